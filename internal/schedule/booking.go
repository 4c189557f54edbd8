package schedule

import (
	"errors"
	"strings"
	"time"

	"courtbooker/internal/models"
)

// Rejections produced by the pre-write validation chain. These are user
// input errors, not system faults.
var (
	ErrContactRequired = errors.New("name and phone are required")
	ErrInvalidRange    = errors.New("end time must be after start time")
	ErrSlotTaken       = errors.New("selected time overlaps with an existing booking")
)

// NewBooking runs the pre-write validation chain in order, short-circuiting
// on the first failure, and constructs the booking record on success:
//
//  1. name and phone must be non-empty after trimming;
//  2. endHour must be strictly after startHour;
//  3. [startHour*60, endHour*60) must not overlap any booking in the
//     same-date snapshot.
//
// The snapshot is whatever the caller currently holds; there is no
// store-level guard, so two near-simultaneous submissions can both pass.
func NewBooking(name, phone, date string, startHour, endHour int, existing []models.Booking, source string, now time.Time) (models.Booking, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" || phone == "" {
		return models.Booking{}, ErrContactRequired
	}

	if endHour <= startHour {
		return models.Booking{}, ErrInvalidRange
	}

	sMin := Minutes(startHour)
	eMin := Minutes(endHour)

	if OverlapsAny(sMin, eMin, existing) {
		return models.Booking{}, ErrSlotTaken
	}

	return models.Booking{
		Date:         date,
		StartMinutes: sMin,
		EndMinutes:   eMin,
		StartTime:    ClockTime(startHour),
		EndTime:      ClockTime(endHour),
		Name:         name,
		Phone:        phone,
		CreatedAt:    now.UnixMilli(),
		Source:       source,
	}, nil
}
