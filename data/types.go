// Package data holds the data-layer records. Every timestamp here is a
// wall-clock reading in the system zone; the "data" path segment is what
// marks the package as local provenance.
package data

import (
	"time"
)

// Person is the data-layer person row.
type Person struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	IsActive    bool
	CreatedTime time.Time
	UpdatedTime *time.Time
}

// Appointment is the data-layer appointment row. AppointmentTime is the
// scheduled wall-clock slot shown to the person and stays untouched by
// conversion on both sides.
type Appointment struct {
	ID              int64
	PersonID        int64
	Title           string
	Room            string
	StartTime       time.Time
	EndTime         time.Time
	AppointmentTime time.Time
	ReminderTime    *time.Time
	Cancelled       bool
}
