package submissions

import (
	"context"

	"github.com/zaffworks/ugcplug/pkg/pagination"
)

// System defines the public contract for submission domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// List returns all submissions for the business, newest DateSubmitted
	// first, recomputed fresh on every call.
	List(ctx context.Context, businessID string) ([]Submission, error)

	// Search returns a filtered, paginated page of submissions for the
	// dashboard.
	Search(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Submission], error)

	Find(ctx context.Context, id int) (*Submission, error)
	Create(ctx context.Context, cmd CreateCommand) (*Submission, error)

	// Update replaces every field of the record identified by id with the
	// supplied values. The embedded ID must match id or the update fails
	// before touching storage.
	Update(ctx context.Context, id int, sub Submission) error

	// Delete removes the record only; the stored file is retained.
	Delete(ctx context.Context, id int) error
}
