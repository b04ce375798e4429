package models

import (
	"testing"
	"time"
)

func TestOtpVerification(t *testing.T) {
	t.Run("hash round-trips through Matches", func(t *testing.T) {
		hash, err := HashOTP("493817")
		if err != nil {
			t.Fatalf("HashOTP failed: %v", err)
		}
		v := OtpVerification{OtpHash: hash}
		if !v.Matches("493817") {
			t.Error("correct code should match")
		}
		if v.Matches("493818") {
			t.Error("wrong code should not match")
		}
	})

	t.Run("expiry is exclusive of the deadline", func(t *testing.T) {
		now := time.Now()
		v := OtpVerification{ExpiresAt: now.Add(10 * time.Minute)}
		if v.IsExpired(now) {
			t.Error("fresh code reported expired")
		}
		if !v.IsExpired(now.Add(10 * time.Minute)) {
			t.Error("code at its deadline should be expired")
		}
		if !v.IsExpired(now.Add(11 * time.Minute)) {
			t.Error("stale code reported valid")
		}
	})
}
