package models

// Profile holds a device's remembered submitter identity, used to prefill
// the booking form on future visits.
type Profile struct {
	DeviceID string `json:"device_id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Phone    string `json:"phone" bson:"phone"`
}
