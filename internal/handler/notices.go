package handler

import (
	"net/http"

	"github.com/dormlife/notice-service/internal/dto"
	"github.com/dormlife/notice-service/internal/query"
	"github.com/gin-gonic/gin"
)

func (h *Handler) noticesList(c *gin.Context) {
	params, err := query.ParseParams(c.Request.URL.Query())
	if err != nil {
		h.respondError(c, err)
		return
	}

	page, err := h.services.List(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NoticesResponse{Notices: page.Notices, Total: page.Total})
}

func (h *Handler) noticesFeed(c *gin.Context) {
	params, err := query.ParseFeedParams(c.Request.URL.Query())
	if err != nil {
		h.respondError(c, err)
		return
	}

	page, err := h.services.List(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NoticesFeedResponse{
		Notices:    page.Notices,
		Total:      page.Total,
		NextCursor: page.NextCursor,
	})
}

func (h *Handler) noticesGet(c *gin.Context) {
	notice, err := h.services.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NoticeResponse{Notice: *notice})
}

func (h *Handler) noticesCreate(c *gin.Context) {
	var input dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	notice, err := h.services.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NoticeResponse{Notice: *notice, Message: "Notice created successfully"})
}

func (h *Handler) noticesUpdate(c *gin.Context) {
	var input dto.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondBindError(c, err)
		return
	}

	notice, err := h.services.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NoticeResponse{Notice: *notice, Message: "Notice updated successfully"})
}

func (h *Handler) noticesDelete(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notice deleted successfully"})
}
