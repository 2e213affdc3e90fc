package service

import (
	"context"

	"github.com/dormlife/notice-service/internal/dto"
	"github.com/dormlife/notice-service/internal/model"
	"github.com/dormlife/notice-service/internal/query"
	"github.com/dormlife/notice-service/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Notice interface {
	List(ctx context.Context, p query.Params) (query.Page, error)
	GetByID(ctx context.Context, id string) (*model.Notice, error)
	Create(ctx context.Context, in dto.CreateNoticeRequest) (*model.Notice, error)
	Update(ctx context.Context, id string, in dto.UpdateNoticeRequest) (*model.Notice, error)
	Delete(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (*model.Notice, error)
	StartJobs()
	StopJobs()
}

type Service struct {
	Notice
}

func New(logger *zap.Logger, repo repository.Notices, rdb *redis.Client) *Service {
	return &Service{
		Notice: newNoticeService(logger, repo, rdb),
	}
}
