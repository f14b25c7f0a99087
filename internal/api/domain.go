package api

import (
	"github.com/zaffworks/ugcplug/internal/submissions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Submissions submissions.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	submissionsSystem := submissions.New(
		runtime.Database.Connection(),
		runtime.FileStore,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Submissions: submissionsSystem,
	}
}
