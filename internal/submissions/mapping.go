package submissions

import (
	"github.com/zaffworks/ugcplug/pkg/query"
	"github.com/zaffworks/ugcplug/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "submissions", "s").
	Project("id", "ID").
	Project("first_name", "FirstName").
	Project("last_name", "LastName").
	Project("email", "Email").
	Project("city", "City").
	Project("country", "Country").
	Project("date_of_birth", "DateOfBirth").
	Project("date_taken", "DateTaken").
	Project("date_submitted", "DateSubmitted").
	Project("file_url", "FileURL").
	Project("consent_given", "ConsentGiven").
	Project("business_id", "BusinessID")

var defaultSort = query.SortField{
	Field:      "DateSubmitted",
	Descending: true,
}

// Filters contains optional filtering criteria for dashboard search queries.
// Nil fields are ignored. BusinessID, Country, and ConsentGiven use exact
// matching; Email and City use case-insensitive contains matching.
type Filters struct {
	BusinessID   *string `json:"business_id,omitempty"`
	Email        *string `json:"email,omitempty"`
	City         *string `json:"city,omitempty"`
	Country      *string `json:"country,omitempty"`
	ConsentGiven *bool   `json:"consent_given,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("BusinessID", f.BusinessID).
		WhereContains("Email", f.Email).
		WhereContains("City", f.City).
		WhereEquals("Country", f.Country).
		WhereEquals("ConsentGiven", f.ConsentGiven)
}

func scanSubmission(s repository.Scanner) (Submission, error) {
	var sub Submission
	err := s.Scan(
		&sub.ID,
		&sub.FirstName,
		&sub.LastName,
		&sub.Email,
		&sub.City,
		&sub.Country,
		&sub.DateOfBirth,
		&sub.DateTaken,
		&sub.DateSubmitted,
		&sub.FileURL,
		&sub.ConsentGiven,
		&sub.BusinessID,
	)
	return sub, err
}
