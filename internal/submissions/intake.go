package submissions

import (
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// minDateOfBirth is the oldest date of birth accepted at intake.
var minDateOfBirth = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.Local)

// dateLayouts are tried in order when parsing free-form date input.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"January 2, 2006",
	time.RFC3339,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// IntakeForm holds the raw public-form field values prior to validation.
type IntakeForm struct {
	FirstName    string
	LastName     string
	Email        string
	City         string
	Country      string
	DateOfBirth  string
	DateTaken    string
	ConsentGiven string
	BusinessID   string
}

// IntakeFormFromValues extracts the named submission fields from multipart
// form values.
func IntakeFormFromValues(values url.Values) IntakeForm {
	return IntakeForm{
		FirstName:    values.Get("FirstName"),
		LastName:     values.Get("LastName"),
		Email:        values.Get("Email"),
		City:         values.Get("City"),
		Country:      values.Get("Country"),
		DateOfBirth:  values.Get("DateOfBirth"),
		DateTaken:    values.Get("DateTaken"),
		ConsentGiven: values.Get("ConsentGiven"),
		// The public form posts this one field with a lowercase d.
		BusinessID: values.Get("BusinessId"),
	}
}

// ValidateIntake turns raw form fields plus a stored-file reference into a
// CreateCommand, or a rejection reason. Rules apply in order: required fields
// and consent, then future-date checks, then the minimum date of birth.
// Unparseable date text yields a nil date rather than an error. DateSubmitted
// is assigned here; the validator itself never touches storage.
func ValidateIntake(form IntakeForm, fileRef string) (CreateCommand, error) {
	cmd := CreateCommand{
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Email:         form.Email,
		City:          form.City,
		Country:       form.Country,
		DateOfBirth:   parseNullableDate(form.DateOfBirth),
		DateTaken:     parseNullableDate(form.DateTaken),
		DateSubmitted: time.Now(),
		FileURL:       fileRef,
		ConsentGiven:  consentGiven(form.ConsentGiven),
		BusinessID:    form.BusinessID,
	}

	if err := validate.Struct(cmd); err != nil || !cmd.ConsentGiven {
		return CreateCommand{}, ErrMissingOrConsent
	}

	if err := checkDates(cmd.DateOfBirth, cmd.DateTaken, cmd.DateSubmitted); err != nil {
		return CreateCommand{}, err
	}

	return cmd, nil
}

// consentGiven reports whether the raw consent value is an accepted
// affirmative form. Only "true" and "on" count; anything else, including an
// absent value, means consent was not given.
func consentGiven(raw string) bool {
	return raw == "true" || raw == "on"
}

// parseNullableDate parses free-form date text leniently. Unparseable input
// yields nil rather than an error.
func parseNullableDate(input string) *time.Time {
	if input == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return &t
		}
	}

	return nil
}

// checkDates enforces the date invariants shared by intake and update:
// neither date may be in the future, and a date of birth may not precede
// 1900-01-01. A date equal to today is accepted.
func checkDates(dateOfBirth, dateTaken *time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	if dateOfBirth != nil && dateOfBirth.After(today) {
		return ErrFutureDateOfBirth
	}
	if dateTaken != nil && dateTaken.After(today) {
		return ErrFutureDateTaken
	}
	if dateOfBirth != nil && dateOfBirth.Before(minDateOfBirth) {
		return ErrDateOfBirthTooOld
	}

	return nil
}
