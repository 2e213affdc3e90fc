package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dormlife/notice-service/internal/apperr"
	"github.com/dormlife/notice-service/internal/dto"
	"github.com/dormlife/notice-service/internal/model"
	"github.com/dormlife/notice-service/internal/query"
	"github.com/dormlife/notice-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type noticeRepo struct {
	db *pgxpool.Pool
}

// New returns the postgres-backed notice store.
func New(db *pgxpool.Pool) repository.Notices {
	return &noticeRepo{db: db}
}

// List pushes category/pinned filters and ordering down to postgres, then
// hands the fetched set to the query engine for search narrowing and
// pagination. Search must run over the complete filtered set, so no LIMIT is
// applied store-side.
func (r *noticeRepo) List(ctx context.Context, p query.Params) (query.Page, error) {
	q := `
		SELECT id, title, description, content, category, COALESCE(image, ''), is_pinned, to_char(created_at, 'YYYY-MM-DD')
		FROM notices
	`
	var (
		args    []interface{}
		where   string
		counter = 1
	)
	if p.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", counter)
		args = append(args, p.Category)
		counter++
	}
	if p.Pinned != nil {
		where += fmt.Sprintf(" AND is_pinned = $%d", counter)
		args = append(args, *p.Pinned)
		counter++
	}
	if where != "" {
		q += " WHERE" + where[len(" AND"):]
	}
	// seq breaks same-day ties by insertion order.
	q += " ORDER BY created_at DESC, seq ASC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return query.Page{}, err
	}
	defer rows.Close()

	var notices []model.Notice
	for rows.Next() {
		var n model.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.Content, &n.Category, &n.Image, &n.IsPinned, &n.CreatedAt); err != nil {
			return query.Page{}, err
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return query.Page{}, err
	}

	return query.Run(notices, p), nil
}

func (r *noticeRepo) GetByID(ctx context.Context, id string) (*model.Notice, error) {
	var n model.Notice
	err := r.db.QueryRow(
		ctx,
		`
		SELECT id, title, description, content, category, COALESCE(image, ''), is_pinned, to_char(created_at, 'YYYY-MM-DD')
		FROM notices
		WHERE id = $1
		`,
		id,
	).Scan(&n.ID, &n.Title, &n.Description, &n.Content, &n.Category, &n.Image, &n.IsPinned, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *noticeRepo) Create(ctx context.Context, in dto.CreateNoticeRequest) (*model.Notice, error) {
	n := model.Notice{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Category:    model.NoticeCategory(in.Category),
		Image:       in.Image,
		IsPinned:    in.Pinned(),
		CreatedAt:   time.Now().Format(model.CreatedAtLayout),
	}

	// NULLIF keeps an absent image out of the row instead of storing ''.
	_, err := r.db.Exec(
		ctx,
		`
		INSERT INTO notices (id, title, description, content, category, image, is_pinned, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
		`,
		n.ID, n.Title, n.Description, n.Content, n.Category, n.Image, n.IsPinned, n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Update builds a SET clause out of only the supplied fields; nil fields are
// stripped before the write and created_at is never part of the statement.
func (r *noticeRepo) Update(ctx context.Context, id string, in dto.UpdateNoticeRequest) error {
	updates := make(map[string]interface{})
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if in.IsPinned != nil {
		updates["is_pinned"] = *in.IsPinned
	}
	if len(updates) == 0 {
		return nil
	}

	q := "UPDATE notices SET "
	values := []interface{}{}
	counter := 1
	for col, val := range updates {
		q += fmt.Sprintf("%s = $%d,", col, counter)
		values = append(values, val)
		counter++
	}
	q = q[:len(q)-1]
	q += fmt.Sprintf(" WHERE id = $%d", counter)
	values = append(values, id)

	tag, err := r.db.Exec(ctx, q, values...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *noticeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM notices WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *noticeRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
