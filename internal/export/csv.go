package export

import (
	"fmt"
	"io"
	"strings"

	"courtbooker/internal/models"
)

var csvHeader = []string{"name", "phone", "date", "startTime", "endTime"}

// WriteCSV serializes bookings as CSV with a header row first. Every field is
// double-quoted and embedded quotes are doubled, which also covers stray
// newlines inside fields.
func WriteCSV(w io.Writer, bookings []models.Booking) error {
	rows := make([][]string, 0, len(bookings)+1)
	rows = append(rows, csvHeader)
	for _, b := range bookings {
		rows = append(rows, []string{b.Name, b.Phone, b.Date, b.StartTime, b.EndTime})
	}

	for i, row := range rows {
		quoted := make([]string, len(row))
		for j, field := range row {
			quoted[j] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		line := strings.Join(quoted, ",")
		if i > 0 {
			line = "\n" + line
		}
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	return nil
}

// FileName names the exported artifact for a date, e.g.
// "rj_bookings_2024-01-01.csv".
func FileName(date string) string {
	return "rj_bookings_" + date + ".csv"
}
