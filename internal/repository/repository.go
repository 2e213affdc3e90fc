package repository

import (
	"context"

	"github.com/dormlife/notice-service/internal/dto"
	"github.com/dormlife/notice-service/internal/model"
	"github.com/dormlife/notice-service/internal/query"
)

// Notices is the store adapter contract. Two implementations exist: the
// postgres-backed store and the read-only in-memory fixture store used when
// no store is configured. Which one is wired is decided at construction time
// by configuration, never by per-call conditionals.
type Notices interface {
	// List runs a filtered, paginated read. Category/pinned filtering is
	// pushed down to the store where it can index them; search and
	// pagination run in-process through the query engine.
	List(ctx context.Context, p query.Params) (query.Page, error)

	// GetByID returns apperr.ErrNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*model.Notice, error)

	// Create assigns the id and today's createdAt (YYYY-MM-DD) and returns
	// the full created notice. Absent optional fields are never written as
	// explicit nulls.
	Create(ctx context.Context, in dto.CreateNoticeRequest) (*model.Notice, error)

	// Update writes only the supplied fields and never touches createdAt.
	Update(ctx context.Context, id string, in dto.UpdateNoticeRequest) error

	// Delete removes by id; deleting an unknown id is apperr.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Ping reports store reachability for the health job.
	Ping(ctx context.Context) error
}
