package submissions_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/zaffworks/ugcplug/internal/submissions"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", submissions.ErrNotFound, http.StatusNotFound},
		{"id mismatch", submissions.ErrIDMismatch, http.StatusBadRequest},
		{"invalid id", submissions.ErrInvalidID, http.StatusBadRequest},
		{"invalid payload", submissions.ErrInvalidPayload, http.StatusBadRequest},
		{"no file", submissions.ErrNoFile, http.StatusBadRequest},
		{"missing business id", submissions.ErrMissingBusinessID, http.StatusBadRequest},
		{"missing or consent", submissions.ErrMissingOrConsent, http.StatusBadRequest},
		{"future date of birth", submissions.ErrFutureDateOfBirth, http.StatusBadRequest},
		{"future date taken", submissions.ErrFutureDateTaken, http.StatusBadRequest},
		{"date of birth too old", submissions.ErrDateOfBirthTooOld, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("find submission: %w", submissions.ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := submissions.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
