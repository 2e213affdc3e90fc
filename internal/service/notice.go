package service

import (
	"context"
	"errors"
	"time"

	"github.com/dormlife/notice-service/internal/dto"
	"github.com/dormlife/notice-service/internal/model"
	"github.com/dormlife/notice-service/internal/query"
	"github.com/dormlife/notice-service/internal/repository"
	"github.com/dormlife/notice-service/internal/repository/redisrepo"
	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	listCacheTTL   = time.Minute * 2
	detailCacheTTL = time.Minute * 5

	storePingInterval = time.Minute * 5
)

type noticeService struct {
	logger    *zap.Logger
	repo      repository.Notices
	rdb       *redis.Client
	scheduler gocron.Scheduler
}

func newNoticeService(logger *zap.Logger, repo repository.Notices, rdb *redis.Client) Notice {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	return &noticeService{
		logger:    logger,
		repo:      repo,
		rdb:       rdb,
		scheduler: scheduler,
	}
}

// List serves a result page, cache-aside. Every distinct normalized
// parameter combination is an independent cache entry; cache trouble is
// logged and degrades to the store, never fails the read.
func (s *noticeService) List(ctx context.Context, p query.Params) (query.Page, error) {
	key := redisrepo.NoticeListKey(p)

	if s.rdb != nil {
		cached, err := redisrepo.Get[query.Page](s.rdb, ctx, key)
		if err == nil {
			return *cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Sugar().Errorf("failed to get notice list from redis: %s", err.Error())
		}
	}

	page, err := s.repo.List(ctx, p)
	if err != nil {
		return query.Page{}, err
	}

	if s.rdb != nil {
		if err := redisrepo.SetJSON(s.rdb, ctx, key, page, listCacheTTL); err != nil {
			s.logger.Sugar().Errorf("failed to set notice list in redis cache: %s", err.Error())
		}
	}

	return page, nil
}

func (s *noticeService) GetByID(ctx context.Context, id string) (*model.Notice, error) {
	key := redisrepo.NoticeDetailKey(id)

	if s.rdb != nil {
		cached, err := redisrepo.Get[model.Notice](s.rdb, ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Sugar().Errorf("failed to get notice(%s) from redis: %s", id, err.Error())
		}
	}

	notice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := redisrepo.SetJSON(s.rdb, ctx, key, notice, detailCacheTTL); err != nil {
			s.logger.Sugar().Errorf("failed to set notice(%s) in redis cache: %s", id, err.Error())
		}
	}

	return notice, nil
}

func (s *noticeService) Create(ctx context.Context, in dto.CreateNoticeRequest) (*model.Notice, error) {
	notice, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	return notice, nil
}

// Update checks existence first so an unknown id surfaces as not-found
// before any write is attempted, then refetches the updated notice.
func (s *noticeService) Update(ctx context.Context, id string, in dto.UpdateNoticeRequest) (*model.Notice, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	s.invalidateDetail(ctx, id)

	return s.repo.GetByID(ctx, id)
}

func (s *noticeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateLists(ctx)
	s.invalidateDetail(ctx, id)
	return nil
}

// TogglePin reads the current pin state and writes its negation.
func (s *noticeService) TogglePin(ctx context.Context, id string) (*model.Notice, error) {
	notice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pinned := !notice.IsPinned
	return s.Update(ctx, id, dto.UpdateNoticeRequest{IsPinned: &pinned})
}

// invalidateLists drops every cached list page. Mutations invalidate
// unconditionally; rebuilding per-key would buy little for a board this size.
func (s *noticeService) invalidateLists(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := redisrepo.DeleteByPattern(s.rdb, ctx, redisrepo.NOTICE_LIST_PATTERN); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate notice list cache: %s", err.Error())
	}
}

func (s *noticeService) invalidateDetail(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := redisrepo.Delete(s.rdb, ctx, redisrepo.NoticeDetailKey(id)); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate notice(%s) detail cache: %s", id, err.Error())
	}
}

func (s *noticeService) newStorePingJob() {
	s.scheduler.NewJob(gocron.DurationJob(storePingInterval), gocron.NewTask(func(ctx context.Context) {
		if err := s.repo.Ping(ctx); err != nil {
			s.logger.Sugar().Errorf("notice store unreachable: %s", err.Error())
			return
		}
		s.logger.Debug("notice store healthy")
	}))
}

func (s *noticeService) StartJobs() {
	s.newStorePingJob()

	s.scheduler.Start()
}

func (s *noticeService) StopJobs() {
	if err := s.scheduler.Shutdown(); err != nil {
		s.logger.Sugar().Errorf("failed to shut down scheduler: %s", err.Error())
	}
}
