package utils

import (
	"fmt"
	"time"
)

// ToIST converts UTC time to Indian Standard Time (IST)
func ToIST(t time.Time) time.Time {
	return toZone(t, "Asia/Kolkata")
}

// toZone converts t into the named zone, falling back to the input
// unchanged when the zone database doesn't carry it.
func toZone(t time.Time, name string) time.Time {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return t
	}
	return t.In(loc)
}

// FormatSlotWindow renders a delivery-slot window the way the storefront
// shows it, e.g. "12:00 PM - 2:00 PM".
func FormatSlotWindow(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", ToIST(start).Format("3:04 PM"), ToIST(end).Format("3:04 PM"))
}
