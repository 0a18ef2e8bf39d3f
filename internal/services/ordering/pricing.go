package ordering

import (
	"time"

	"github.com/shopspring/decimal"

	"pizzeria-orders/internal/errs"
	"pizzeria-orders/internal/models"
)

// Pricing constants. The delivery fee is the flat-fee variant; the
// late-night multiplier applies a 20% surcharge on the subtotal.
var (
	deliveryFee         = decimal.RequireFromString("5.00")
	lateNightMultiplier = decimal.RequireFromString("1.20")
)

// Late-night orders are only accepted between 22:00 and 04:00,
// wrapping midnight.
const (
	lateNightStartHour = 22
	lateNightEndHour   = 4
)

// PricingPolicy derives an order total from its subtotal for one
// service type, and may refuse order creation outright.
type PricingPolicy interface {
	ServiceType() models.ServiceType
	Total(subtotal decimal.Decimal) decimal.Decimal
	ValidateCreate(at time.Time) error
}

type dineInPolicy struct{}

func (dineInPolicy) ServiceType() models.ServiceType         { return models.DineIn }
func (dineInPolicy) Total(s decimal.Decimal) decimal.Decimal { return s }
func (dineInPolicy) ValidateCreate(time.Time) error          { return nil }

type takeawayPolicy struct{}

func (takeawayPolicy) ServiceType() models.ServiceType         { return models.Takeaway }
func (takeawayPolicy) Total(s decimal.Decimal) decimal.Decimal { return s }
func (takeawayPolicy) ValidateCreate(time.Time) error          { return nil }

type deliveryPolicy struct{}

func (deliveryPolicy) ServiceType() models.ServiceType { return models.Delivery }

func (deliveryPolicy) Total(s decimal.Decimal) decimal.Decimal {
	return s.Add(deliveryFee)
}

func (deliveryPolicy) ValidateCreate(time.Time) error { return nil }

type lateNightPolicy struct{}

func (lateNightPolicy) ServiceType() models.ServiceType { return models.LateNight }

func (lateNightPolicy) Total(s decimal.Decimal) decimal.Decimal {
	return s.Mul(lateNightMultiplier)
}

func (lateNightPolicy) ValidateCreate(at time.Time) error {
	if !inLateNightWindow(at) {
		return errs.BusinessRule("Late night orders are only accepted between 10 PM and 4 AM")
	}
	return nil
}

func inLateNightWindow(at time.Time) bool {
	hour := at.Hour()
	return hour >= lateNightStartHour || hour < lateNightEndHour
}

// policyFor maps a service type to its pricing policy.
func policyFor(serviceType models.ServiceType) (PricingPolicy, error) {
	switch serviceType {
	case models.DineIn:
		return dineInPolicy{}, nil
	case models.Takeaway:
		return takeawayPolicy{}, nil
	case models.Delivery:
		return deliveryPolicy{}, nil
	case models.LateNight:
		return lateNightPolicy{}, nil
	default:
		return nil, errs.Validation("service_type", "Unsupported service type: "+string(serviceType))
	}
}
