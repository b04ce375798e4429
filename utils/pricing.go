package utils

import (
	"math"

	"github.com/khanakart/khanakart-api/models"
)

const (
	// FlatDeliveryFee applies to delivery-mode orders only.
	FlatDeliveryFee = 40.0
	// ServiceFeeRate is charged on the subtotal, rounded to whole rupees.
	ServiceFeeRate = 0.05
)

// DeliveryFee returns the fee for an order mode. Takeaway and dine-in
// orders pay nothing.
func DeliveryFee(mode models.OrderMode) float64 {
	if mode == models.ModeDelivery {
		return FlatDeliveryFee
	}
	return 0
}

// ServiceFee charges ServiceFeeRate on the subtotal, rounded to the
// nearest rupee.
func ServiceFee(subtotal float64) float64 {
	return math.Round(subtotal * ServiceFeeRate)
}

// ComputeTotals fills in delivery fee, service fee and grand total for a
// given subtotal and mode.
func ComputeTotals(subtotal float64, mode models.OrderMode) (deliveryFee, serviceFee, total float64) {
	deliveryFee = DeliveryFee(mode)
	serviceFee = ServiceFee(subtotal)
	total = subtotal + deliveryFee + serviceFee
	return
}
