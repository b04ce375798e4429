package utils

import (
	"testing"
	"time"
)

func TestToIST(t *testing.T) {
	t.Run("shifts UTC forward by five and a half hours", func(t *testing.T) {
		if _, err := time.LoadLocation("Asia/Kolkata"); err != nil {
			t.Skip("IST zone not available in this environment")
		}
		utc := time.Date(2025, 6, 1, 6, 30, 0, 0, time.UTC)
		got := ToIST(utc)
		if got.Hour() != 12 || got.Minute() != 0 {
			t.Errorf("expected 12:00 IST, got %02d:%02d", got.Hour(), got.Minute())
		}
		if !got.Equal(utc) {
			t.Error("conversion must not change the instant")
		}
	})
}

func TestToZoneFallback(t *testing.T) {
	t.Run("unknown zone returns the input unchanged", func(t *testing.T) {
		in := time.Date(2025, 6, 1, 6, 30, 0, 0, time.UTC)
		got := toZone(in, "Nowhere/Imaginary")
		if got != in {
			t.Errorf("expected input unchanged, got %v", got)
		}
	})
}

func TestFormatSlotWindow(t *testing.T) {
	t.Run("renders start and end separated by a dash", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 6, 30, 0, 0, time.UTC)
		end := start.Add(2 * time.Hour)
		want := ToIST(start).Format("3:04 PM") + " - " + ToIST(end).Format("3:04 PM")
		if got := FormatSlotWindow(start, end); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("noon window reads like the storefront shows it", func(t *testing.T) {
		if _, err := time.LoadLocation("Asia/Kolkata"); err != nil {
			t.Skip("IST zone not available in this environment")
		}
		start := time.Date(2025, 6, 1, 6, 30, 0, 0, time.UTC) // 12:00 PM IST
		end := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)   // 2:00 PM IST
		if got := FormatSlotWindow(start, end); got != "12:00 PM - 2:00 PM" {
			t.Errorf("expected \"12:00 PM - 2:00 PM\", got %q", got)
		}
	})
}
