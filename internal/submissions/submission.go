// Package submissions implements the UGC submission domain. It provides
// types, intake validation, data access, and HTTP handling for public form
// submissions and their dashboard lifecycle.
package submissions

import "time"

// Submission represents a persisted user-generated content record.
// ID is assigned by the repository on create and is immutable. DateSubmitted
// and FileURL are server-assigned at creation time and never client-supplied.
type Submission struct {
	ID            int        `json:"id"`
	FirstName     string     `json:"first_name" validate:"notblank"`
	LastName      string     `json:"last_name" validate:"notblank"`
	Email         string     `json:"email" validate:"notblank"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	DateTaken     *time.Time `json:"date_taken"`
	DateSubmitted time.Time  `json:"date_submitted"`
	FileURL       string     `json:"file_url"`
	ConsentGiven  bool       `json:"consent_given"`
	BusinessID    string     `json:"business_id" validate:"notblank"`
}

// CreateCommand carries a validated submission ready for persistence.
// Produced only by ValidateIntake; the repository never re-validates it.
type CreateCommand struct {
	FirstName     string `validate:"notblank"`
	LastName      string `validate:"notblank"`
	Email         string `validate:"notblank"`
	City          string
	Country       string
	DateOfBirth   *time.Time
	DateTaken     *time.Time
	DateSubmitted time.Time
	FileURL       string
	ConsentGiven  bool
	BusinessID    string `validate:"notblank"`
}
