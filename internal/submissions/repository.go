package submissions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/zaffworks/ugcplug/pkg/filestore"
	"github.com/zaffworks/ugcplug/pkg/pagination"
	"github.com/zaffworks/ugcplug/pkg/query"
	"github.com/zaffworks/ugcplug/pkg/repository"
)

type repo struct {
	db         *sql.DB
	store      filestore.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a submission repository implementing the System interface.
func New(
	db *sql.DB,
	store filestore.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		store:      store,
		logger:     logger.With("system", "submissions"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.store, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(ctx context.Context, businessID string) ([]Submission, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("BusinessID", businessID).
		Build()

	subs, err := repository.QueryMany(ctx, r.db, q, args, scanSubmission)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	return subs, nil
}

func (r *repo) Search(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Submission], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "FirstName", "LastName", "Email")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	subs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSubmission)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	result := pagination.NewPageResult(subs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int) (*Submission, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	sub, err := repository.QueryOne(ctx, r.db, q, args, scanSubmission)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound)
	}
	return &sub, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Submission, error) {
	q := `
		INSERT INTO submissions(first_name, last_name, email, city, country, date_of_birth, date_taken, date_submitted, file_url, consent_given, business_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, first_name, last_name, email, city, country, date_of_birth, date_taken, date_submitted, file_url, consent_given, business_id`

	insertArgs := []any{
		cmd.FirstName,
		cmd.LastName,
		cmd.Email,
		cmd.City,
		cmd.Country,
		cmd.DateOfBirth,
		cmd.DateTaken,
		cmd.DateSubmitted,
		cmd.FileURL,
		cmd.ConsentGiven,
		cmd.BusinessID,
	}

	sub, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Submission, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanSubmission)
	})

	// Record and file writes are not transactionally linked: the file is
	// already in the store by the time Create runs, and a failed insert
	// leaves it there.
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}

	r.logger.Info("submission created", "id", sub.ID, "business_id", sub.BusinessID)
	return &sub, nil
}

func (r *repo) Update(ctx context.Context, id int, sub Submission) error {
	if sub.ID != id {
		return ErrIDMismatch
	}

	if err := validate.Struct(sub); err != nil {
		return ErrInvalidPayload
	}
	if err := checkDates(sub.DateOfBirth, sub.DateTaken, time.Now()); err != nil {
		return err
	}

	q := `
		UPDATE submissions
		SET first_name = $1, last_name = $2, email = $3, city = $4, country = $5,
			date_of_birth = $6, date_taken = $7, date_submitted = $8,
			file_url = $9, consent_given = $10, business_id = $11
		WHERE id = $12`

	updateArgs := []any{
		sub.FirstName,
		sub.LastName,
		sub.Email,
		sub.City,
		sub.Country,
		sub.DateOfBirth,
		sub.DateTaken,
		sub.DateSubmitted,
		sub.FileURL,
		sub.ConsentGiven,
		sub.BusinessID,
		id,
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, updateArgs...)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound)
	}

	r.logger.Info("submission updated", "id", id)
	return nil
}

func (r *repo) Delete(ctx context.Context, id int) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM submissions WHERE id = $1",
			id,
		)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound)
	}

	// The stored file is retained on delete; only the record is removed.
	r.logger.Info("submission deleted", "id", id)
	return nil
}
