package utils

import (
	"testing"

	"github.com/khanakart/khanakart-api/models"
)

func TestDeliveryFee(t *testing.T) {
	t.Run("flat fee for delivery mode", func(t *testing.T) {
		if fee := DeliveryFee(models.ModeDelivery); fee != FlatDeliveryFee {
			t.Errorf("expected %f, got %f", FlatDeliveryFee, fee)
		}
	})

	t.Run("free for takeaway and dine-in", func(t *testing.T) {
		if fee := DeliveryFee(models.ModeTakeaway); fee != 0 {
			t.Errorf("takeaway: expected 0, got %f", fee)
		}
		if fee := DeliveryFee(models.ModeDineIn); fee != 0 {
			t.Errorf("dine_in: expected 0, got %f", fee)
		}
	})
}

func TestServiceFee(t *testing.T) {
	t.Run("five percent rounded to whole rupees", func(t *testing.T) {
		cases := []struct {
			subtotal float64
			want     float64
		}{
			{100, 5},
			{0, 0},
			{199, 10},   // 9.95 rounds up
			{189, 9},    // 9.45 rounds down
			{250, 13},   // 12.5 rounds up
			{1000, 50},
		}
		for _, tc := range cases {
			if got := ServiceFee(tc.subtotal); got != tc.want {
				t.Errorf("ServiceFee(%f): expected %f, got %f", tc.subtotal, tc.want, got)
			}
		}
	})
}

func TestComputeTotals(t *testing.T) {
	t.Run("delivery order sums subtotal, delivery fee and service fee", func(t *testing.T) {
		deliveryFee, serviceFee, total := ComputeTotals(480, models.ModeDelivery)
		if deliveryFee != FlatDeliveryFee {
			t.Errorf("expected delivery fee %f, got %f", FlatDeliveryFee, deliveryFee)
		}
		if serviceFee != 24 {
			t.Errorf("expected service fee 24, got %f", serviceFee)
		}
		if total != 480+40+24 {
			t.Errorf("expected total 544, got %f", total)
		}
	})

	t.Run("takeaway order pays no delivery fee", func(t *testing.T) {
		deliveryFee, serviceFee, total := ComputeTotals(200, models.ModeTakeaway)
		if deliveryFee != 0 {
			t.Errorf("expected delivery fee 0, got %f", deliveryFee)
		}
		if total != 200+serviceFee {
			t.Errorf("expected total %f, got %f", 200+serviceFee, total)
		}
	})
}
