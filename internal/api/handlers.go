// Package api exposes the topic search service over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datacube/topic-search/internal/domain"
	"github.com/datacube/topic-search/internal/logger"
	"github.com/datacube/topic-search/internal/service"
)

const summaryCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// Handler holds the HTTP handlers for the topic endpoints.
type Handler struct {
	service     *service.TopicService
	defaultLang string
}

// NewHandler creates the API handler set.
func NewHandler(svc *service.TopicService, defaultLang string) *Handler {
	if !domain.IsSupportedLanguage(defaultLang) {
		defaultLang = domain.DefaultLanguage
	}
	return &Handler{service: svc, defaultLang: defaultLang}
}

// Topic handles GET /api/v1/topic/:topic. Query parameters are parsed
// leniently: unknown sections fall back to "all", malformed pages to 1,
// and unknown periods are ignored.
func (h *Handler) Topic(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		lang = h.defaultLang
	}

	query := domain.NewTopicQuery(
		lang,
		c.Param("topic"),
		c.Query("section"),
		c.Query("period"),
		c.Query("page"),
	)

	result, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrNoSearchTerms) {
			c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
			return
		}
		logger.FromContext(c.Request.Context()).Error("topic search failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Summary handles GET /api/v1/content-summary. Unlike the topic endpoint
// this one validates its parameters strictly: a malformed periodId or an
// unknown section is rejected with 400.
func (h *Handler) Summary(c *gin.Context) {
	periodID := c.Query("periodId")
	if periodID != "" && !domain.IsValidPeriodID(periodID) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid periodId: expected YYYY-kwNN or YYYY-MM-DD",
		})
		return
	}

	rawSection := c.Query("section")
	section := domain.ParseSection(rawSection)
	if rawSection != "" && rawSection != string(section) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid section: expected all, tech, investment, or tips",
		})
		return
	}

	lang := c.Query("lang")
	if lang == "" {
		lang = h.defaultLang
	}

	doc, err := h.service.Summary(c.Request.Context(), service.SummaryRequest{
		Lang:     lang,
		PeriodID: periodID,
		Section:  section,
		Topic:    c.Query("topic"),
	})
	if err != nil {
		if errors.Is(err, service.ErrNoPeriod) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no period available"})
			return
		}
		logger.FromContext(c.Request.Context()).Error("summary rendering failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Cache-Control", summaryCacheControl)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
}
