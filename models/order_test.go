package models

import "testing"

func TestCanTransition(t *testing.T) {
	t.Run("happy path runs pending through delivered", func(t *testing.T) {
		path := []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered}
		for i := 0; i < len(path)-1; i++ {
			if !CanTransition(path[i], path[i+1]) {
				t.Errorf("expected %s -> %s to be allowed", path[i], path[i+1])
			}
		}
	})

	t.Run("cancellation allowed only before preparing", func(t *testing.T) {
		if !CanTransition(StatusPending, StatusCancelled) {
			t.Error("pending should be cancellable")
		}
		if !CanTransition(StatusConfirmed, StatusCancelled) {
			t.Error("confirmed should be cancellable")
		}
		for _, from := range []OrderStatus{StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled} {
			if CanTransition(from, StatusCancelled) {
				t.Errorf("%s should not be cancellable", from)
			}
		}
	})

	t.Run("terminal states allow nothing", func(t *testing.T) {
		targets := []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled}
		for _, from := range []OrderStatus{StatusDelivered, StatusCancelled} {
			for _, to := range targets {
				if CanTransition(from, to) {
					t.Errorf("%s -> %s should be rejected", from, to)
				}
			}
		}
	})

	t.Run("no skipping forward", func(t *testing.T) {
		if CanTransition(StatusPending, StatusPreparing) {
			t.Error("pending -> preparing should be rejected")
		}
		if CanTransition(StatusConfirmed, StatusDelivered) {
			t.Error("confirmed -> delivered should be rejected")
		}
	})
}

func TestValidMode(t *testing.T) {
	for _, mode := range []OrderMode{ModeDelivery, ModeTakeaway, ModeDineIn} {
		if !ValidMode(mode) {
			t.Errorf("%s should be valid", mode)
		}
	}
	if ValidMode("drone_drop") {
		t.Error("unknown mode accepted")
	}
}

func TestNeedsSlotRelease(t *testing.T) {
	slotID := uint(7)

	t.Run("delivery order with a slot releases its seat", func(t *testing.T) {
		order := Order{OrderMode: ModeDelivery, DeliverySlotID: &slotID}
		if !order.NeedsSlotRelease() {
			t.Error("delivery order with a slot should release on cancel")
		}
	})

	t.Run("delivery order without a slot has nothing to release", func(t *testing.T) {
		order := Order{OrderMode: ModeDelivery}
		if order.NeedsSlotRelease() {
			t.Error("no slot booked, nothing to release")
		}
	})

	t.Run("non-delivery order never releases, even with a stray slot ID", func(t *testing.T) {
		// A takeaway order that smuggled in a slot reference never booked a
		// seat; releasing one would drain someone else's booking and let
		// the slot oversell past capacity.
		for _, mode := range []OrderMode{ModeTakeaway, ModeDineIn} {
			order := Order{OrderMode: mode, DeliverySlotID: &slotID}
			if order.NeedsSlotRelease() {
				t.Errorf("%s order must not release a slot", mode)
			}
		}
	})
}

func TestIsCancellable(t *testing.T) {
	order := Order{OrderStatus: StatusPending}
	if !order.IsCancellable() {
		t.Error("pending order should be cancellable")
	}
	order.OrderStatus = StatusOutForDelivery
	if order.IsCancellable() {
		t.Error("order out for delivery should not be cancellable")
	}
}
