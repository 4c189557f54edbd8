package schedule

import (
	"fmt"

	"courtbooker/internal/models"
)

// Venue operating window: open hour inclusive, close hour exclusive
// end-of-last-slot. Slots are whole hours; partial-hour bookings are not
// representable.
const (
	OpenHour  = 6
	CloseHour = 22
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusSelected  Status = "selected"
)

// Overlaps reports whether the half-open minute intervals [s, e) and
// [bs, be) share at least one minute. Back-to-back intervals (e == bs or
// be == s) do not overlap. Degenerate intervals (e <= s) must be rejected by
// the caller; here they simply never overlap anything.
func Overlaps(s, e, bs, be int) bool {
	return s < be && e > bs
}

// OverlapsAny reports whether [s, e) overlaps any booking in the same-date
// snapshot.
func OverlapsAny(s, e int, bookings []models.Booking) bool {
	for _, b := range bookings {
		if Overlaps(s, e, b.StartMinutes, b.EndMinutes) {
			return true
		}
	}
	return false
}

// SlotStatuses maps every whole hour in the operating window to its status,
// derived from the same-date booking snapshot and the caller's selected
// [startHour, endHour) range. Booked hours are never overridden by the
// selection. Pass an empty selection (startHour >= endHour) for no selected
// hours.
func SlotStatuses(bookings []models.Booking, startHour, endHour int) map[int]Status {
	status := make(map[int]Status, CloseHour-OpenHour)
	for h := OpenHour; h < CloseHour; h++ {
		status[h] = StatusAvailable
	}
	for _, b := range bookings {
		for h := b.StartMinutes / 60; h < b.EndMinutes/60; h++ {
			if _, ok := status[h]; ok {
				status[h] = StatusBooked
			}
		}
	}
	for h := startHour; h < endHour; h++ {
		if status[h] == StatusAvailable {
			status[h] = StatusSelected
		}
	}
	return status
}

// Minutes converts a whole hour to minutes since midnight.
func Minutes(hour int) int {
	return hour * 60
}

// ClockTime renders a whole hour as the stored "HH:00" form.
func ClockTime(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// HourLabel renders a whole hour on the 12-hour clock, e.g. "6 AM", "10 PM".
func HourLabel(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := (hour+11)%12 + 1
	return fmt.Sprintf("%d %s", h, suffix)
}
