package utils

import (
	"strings"
	"testing"
)

func TestGenerateOTP(t *testing.T) {
	t.Run("always six numeric digits", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			otp := GenerateOTP()
			if len(otp) != 6 {
				t.Fatalf("expected 6 digits, got %q", otp)
			}
			for _, r := range otp {
				if r < '0' || r > '9' {
					t.Fatalf("non-digit in OTP %q", otp)
				}
			}
		}
	})
}

func TestGenerateOrderNumber(t *testing.T) {
	t.Run("carries the ORD prefix", func(t *testing.T) {
		n := GenerateOrderNumber()
		if !strings.HasPrefix(n, "ORD-") {
			t.Errorf("expected ORD- prefix, got %q", n)
		}
		if len(n) != len("ORD-")+10 {
			t.Errorf("unexpected length for %q", n)
		}
	})

	t.Run("does not repeat", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 1000; i++ {
			n := GenerateOrderNumber()
			if seen[n] {
				t.Fatalf("duplicate order number %q", n)
			}
			seen[n] = true
		}
	})
}
