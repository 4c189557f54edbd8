package schedule

import (
	"testing"
	"time"

	"courtbooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)
	existing := []models.Booking{
		{Date: "2024-01-02", StartMinutes: 540, EndMinutes: 600}, // 09:00-10:00
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		b, err := NewBooking("  Alice ", " 555-0101 ", "2024-01-02", 10, 12, existing, "", now)
		require.NoError(t, err)

		assert.Equal(t, "Alice", b.Name, "name is trimmed")
		assert.Equal(t, "555-0101", b.Phone, "phone is trimmed")
		assert.Equal(t, "2024-01-02", b.Date)
		assert.Equal(t, 600, b.StartMinutes)
		assert.Equal(t, 720, b.EndMinutes)
		assert.Equal(t, "10:00", b.StartTime)
		assert.Equal(t, "12:00", b.EndTime)
		assert.Equal(t, now.UnixMilli(), b.CreatedAt)
		assert.Empty(t, b.Source)
		assert.Empty(t, b.ID, "id is assigned by the store")
	})

	t.Run("admin source", func(t *testing.T) {
		t.Parallel()

		b, err := NewBooking("Bob", "555-0102", "2024-01-02", 7, 8, existing, models.SourceAdmin, now)
		require.NoError(t, err)
		assert.Equal(t, models.SourceAdmin, b.Source)
	})

	t.Run("adjacent booking accepted", func(t *testing.T) {
		t.Parallel()

		_, err := NewBooking("Alice", "555-0101", "2024-01-02", 8, 9, existing, "", now)
		assert.NoError(t, err)

		_, err = NewBooking("Alice", "555-0101", "2024-01-02", 10, 11, existing, "", now)
		assert.NoError(t, err)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewBooking("   ", "555-0101", "2024-01-02", 10, 11, existing, "", now)
		assert.ErrorIs(t, err, ErrContactRequired)
	})

	t.Run("empty phone rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewBooking("Alice", "", "2024-01-02", 10, 11, existing, "", now)
		assert.ErrorIs(t, err, ErrContactRequired)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewBooking("Alice", "555-0101", "2024-01-02", 11, 10, existing, "", now)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("zero-length range rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewBooking("Alice", "555-0101", "2024-01-02", 10, 10, existing, "", now)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("overlap rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewBooking("Alice", "555-0101", "2024-01-02", 9, 11, existing, "", now)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("contact check runs before range check", func(t *testing.T) {
		t.Parallel()

		_, err := NewBooking("", "", "2024-01-02", 11, 10, existing, "", now)
		assert.ErrorIs(t, err, ErrContactRequired)
	})

	t.Run("range check runs before overlap check", func(t *testing.T) {
		t.Parallel()

		_, err := NewBooking("Alice", "555-0101", "2024-01-02", 9, 9, existing, "", now)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
