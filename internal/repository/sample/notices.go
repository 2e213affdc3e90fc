// Package sample is the degraded-mode notice store: a fixed in-memory
// dataset behind the same adapter contract as the real store. Reads run the
// identical filter/search/paginate pipeline; writes always fail, since
// mutating the fixture set would be meaningless.
package sample

import (
	"context"
	"sync"

	"github.com/dormlife/notice-service/internal/apperr"
	"github.com/dormlife/notice-service/internal/dto"
	"github.com/dormlife/notice-service/internal/model"
	"github.com/dormlife/notice-service/internal/query"
	"github.com/dormlife/notice-service/internal/repository"
)

type noticeRepo struct {
	mu      sync.RWMutex
	notices []model.Notice
}

// New returns the fixture-backed notice store.
func New() repository.Notices {
	return &noticeRepo{notices: Notices}
}

func (r *noticeRepo) List(_ context.Context, p query.Params) (query.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return query.Run(r.notices, p), nil
}

func (r *noticeRepo) GetByID(_ context.Context, id string) (*model.Notice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notices {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *noticeRepo) Create(context.Context, dto.CreateNoticeRequest) (*model.Notice, error) {
	return nil, apperr.ErrStoreUnavailable
}

func (r *noticeRepo) Update(context.Context, string, dto.UpdateNoticeRequest) error {
	return apperr.ErrStoreUnavailable
}

func (r *noticeRepo) Delete(context.Context, string) error {
	return apperr.ErrStoreUnavailable
}

func (r *noticeRepo) Ping(context.Context) error {
	return nil
}
