package submissions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zaffworks/ugcplug/internal/submissions"
	"github.com/zaffworks/ugcplug/pkg/pagination"
)

// The update validation paths reject before any storage access, so a nil
// database is safe here; reaching the database would panic the test.
func nilDBSystem() submissions.System {
	return submissions.New(nil, &mockStore{}, testLogger(), pagination.Config{
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})
}

func validSubmission(id int) submissions.Submission {
	return submissions.Submission{
		ID:            id,
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		DateSubmitted: time.Now(),
		FileURL:       "token_photo.jpg",
		ConsentGiven:  true,
		BusinessID:    "zaff-papers",
	}
}

func TestUpdateRejectsBeforeStorage(t *testing.T) {
	sys := nilDBSystem()
	ctx := context.Background()

	t.Run("id mismatch", func(t *testing.T) {
		err := sys.Update(ctx, 3, validSubmission(4))
		if !errors.Is(err, submissions.ErrIDMismatch) {
			t.Errorf("error = %v, want ErrIDMismatch", err)
		}
	})

	t.Run("blank required field", func(t *testing.T) {
		sub := validSubmission(3)
		sub.FirstName = "   "

		err := sys.Update(ctx, 3, sub)
		if !errors.Is(err, submissions.ErrInvalidPayload) {
			t.Errorf("error = %v, want ErrInvalidPayload", err)
		}
	})

	t.Run("blank business id", func(t *testing.T) {
		sub := validSubmission(3)
		sub.BusinessID = ""

		err := sys.Update(ctx, 3, sub)
		if !errors.Is(err, submissions.ErrInvalidPayload) {
			t.Errorf("error = %v, want ErrInvalidPayload", err)
		}
	})

	t.Run("future date of birth", func(t *testing.T) {
		tomorrow := time.Now().AddDate(0, 0, 1)
		sub := validSubmission(3)
		sub.DateOfBirth = &tomorrow

		err := sys.Update(ctx, 3, sub)
		if !errors.Is(err, submissions.ErrFutureDateOfBirth) {
			t.Errorf("error = %v, want ErrFutureDateOfBirth", err)
		}
	})

	t.Run("future date taken", func(t *testing.T) {
		tomorrow := time.Now().AddDate(0, 0, 1)
		sub := validSubmission(3)
		sub.DateTaken = &tomorrow

		err := sys.Update(ctx, 3, sub)
		if !errors.Is(err, submissions.ErrFutureDateTaken) {
			t.Errorf("error = %v, want ErrFutureDateTaken", err)
		}
	})

	t.Run("ancient date of birth", func(t *testing.T) {
		ancient := time.Date(1850, 1, 1, 0, 0, 0, 0, time.Local)
		sub := validSubmission(3)
		sub.DateOfBirth = &ancient

		err := sys.Update(ctx, 3, sub)
		if !errors.Is(err, submissions.ErrDateOfBirthTooOld) {
			t.Errorf("error = %v, want ErrDateOfBirthTooOld", err)
		}
	})
}
