// Package domain holds the domain-layer records. Every timestamp here is
// an absolute UTC instant; the "domain" path segment is what marks the
// package as UTC provenance.
package domain

import (
	"time"
)

// Person is the domain-layer person. FullName has no data-layer source
// field and is filled by a resolver backed by a names.Formatter.
type Person struct {
	ID          int64
	FirstName   string
	LastName    string
	FullName    string
	Email       string
	IsActive    bool
	CreatedTime time.Time
	UpdatedTime *time.Time
}

// Appointment is the domain-layer appointment. AppointmentTime keeps the
// wall-clock slot verbatim; StartTime, EndTime and ReminderTime are UTC.
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
