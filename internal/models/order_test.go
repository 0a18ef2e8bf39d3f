package models

import "testing"

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to delivered", StatusPending, StatusDelivered, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to pending", StatusPending, StatusPending, true},
		{"confirmed to preparing", StatusConfirmed, StatusPreparing, true},
		{"preparing to confirmed", StatusPreparing, StatusConfirmed, false},
		{"ready to pending", StatusReady, StatusPending, false},
		{"ready to cancelled", StatusReady, StatusCancelled, true},
		{"delivered to cancelled", StatusDelivered, StatusCancelled, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to cancelled", StatusCancelled, StatusCancelled, false},
		{"pending to unknown", StatusPending, OrderStatus("lost"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		StatusPending:   false,
		StatusConfirmed: false,
		StatusPreparing: false,
		StatusReady:     false,
		StatusDelivered: true,
		StatusCancelled: true,
	}

	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestServiceTypeValid(t *testing.T) {
	for _, st := range []ServiceType{DineIn, Takeaway, Delivery, LateNight} {
		if !st.Valid() {
			t.Errorf("expected %s to be valid", st)
		}
	}
	if ServiceType("drive_through").Valid() {
		t.Error("expected drive_through to be invalid")
	}
}
