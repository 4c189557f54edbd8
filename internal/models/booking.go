package models

// Booking is one reserved interval on the court. The document id is assigned
// at the store boundary. Bookings are immutable once created; cancellation
// deletes the document.
type Booking struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Date         string `json:"date" bson:"date"`
	StartMinutes int    `json:"start_minutes" bson:"startMinutes"`
	EndMinutes   int    `json:"end_minutes" bson:"endMinutes"`
	StartTime    string `json:"start_time" bson:"startTime"`
	EndTime      string `json:"end_time" bson:"endTime"`
	Name         string `json:"name" bson:"name"`
	Phone        string `json:"phone" bson:"phone"`
	CreatedAt    int64  `json:"created_at" bson:"createdAt"`
	Source       string `json:"source,omitempty" bson:"source,omitempty"`
}

// SourceAdmin tags offline entries added from the admin dashboard.
// Self-service bookings carry no source.
const SourceAdmin = "admin"
