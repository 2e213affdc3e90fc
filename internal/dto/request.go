package dto

import "github.com/dormlife/notice-service/internal/model"

type CreateNoticeRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=1000"`
	Content     string `json:"content" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=events announcements maintenance"`
	Image       string `json:"image" binding:"omitempty,url"`
	IsPinned    *bool  `json:"isPinned"`
}

// Pinned resolves the optional isPinned flag; absent means false.
func (r CreateNoticeRequest) Pinned() bool {
	return r.IsPinned != nil && *r.IsPinned
}

// UpdateNoticeRequest is a partial update: nil fields are left untouched.
// A present-but-empty title/description/content is still rejected.
type UpdateNoticeRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,min=1,max=1000"`
	Content     *string `json:"content" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,oneof=events announcements maintenance"`
	Image       *string `json:"image" binding:"omitempty,url"`
	IsPinned    *bool   `json:"isPinned"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateNoticeRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Content == nil &&
		r.Category == nil && r.Image == nil && r.IsPinned == nil
}

type NoticesResponse struct {
	Notices []model.Notice `json:"notices"`
	Total   int            `json:"total"`
}

type NoticesFeedResponse struct {
	Notices    []model.Notice `json:"notices"`
	Total      int            `json:"total"`
	NextCursor string         `json:"nextCursor,omitempty"`
}

type NoticeResponse struct {
	Notice  model.Notice `json:"notice"`
	Message string       `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
