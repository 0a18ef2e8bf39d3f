package ordering

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pizzeria-orders/internal/models"
)

func TestPolicyTotals(t *testing.T) {
	tests := []struct {
		name     string
		policy   PricingPolicy
		subtotal string
		want     string
	}{
		{"dine-in keeps subtotal", dineInPolicy{}, "31.97", "31.97"},
		{"takeaway keeps subtotal", takeawayPolicy{}, "24.50", "24.50"},
		{"delivery adds flat fee", deliveryPolicy{}, "14.99", "19.99"},
		{"delivery fee on zero subtotal", deliveryPolicy{}, "0", "5.00"},
		{"late night adds 20 percent", lateNightPolicy{}, "15.99", "19.188"},
		{"late night on round subtotal", lateNightPolicy{}, "10.00", "12.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal := decimal.RequireFromString(tt.subtotal)
			got := tt.policy.Total(subtotal)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Total(%s) = %s, want %s", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestLateNightWindow(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		minute  int
		allowed bool
	}{
		{"ten pm", 22, 0, true},
		{"eleven pm", 23, 0, true},
		{"midnight", 0, 0, true},
		{"almost four am", 3, 59, true},
		{"four am", 4, 0, false},
		{"noon", 12, 0, false},
		{"just before ten pm", 21, 59, false},
	}

	policy := lateNightPolicy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2025, 6, 15, tt.hour, tt.minute, 0, 0, time.UTC)
			err := policy.ValidateCreate(at)
			if tt.allowed && err != nil {
				t.Errorf("expected %02d:%02d to be inside the window, got %v", tt.hour, tt.minute, err)
			}
			if !tt.allowed && err == nil {
				t.Errorf("expected %02d:%02d to be outside the window", tt.hour, tt.minute)
			}
		})
	}
}

func TestPolicyForKnownServiceTypes(t *testing.T) {
	for _, st := range []models.ServiceType{models.DineIn, models.Takeaway, models.Delivery, models.LateNight} {
		policy, err := policyFor(st)
		if err != nil {
			t.Fatalf("policyFor(%s) returned error: %v", st, err)
		}
		if policy.ServiceType() != st {
			t.Errorf("policyFor(%s) returned policy for %s", st, policy.ServiceType())
		}
	}
}

func TestPolicyForUnsupportedServiceType(t *testing.T) {
	if _, err := policyFor("drive_through"); err == nil {
		t.Fatal("expected error for unsupported service type")
	}
}
