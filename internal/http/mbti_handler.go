package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fortune-api/internal/domain"
	"fortune-api/internal/service"
)

// MBTIHandler exposes the questionnaire, classifier and per-user results.
type MBTIHandler struct {
	logger   *zap.Logger
	mbtiServ *service.MBTIService
	reading  *service.ReadingService
}

func NewMBTIHandler(logger *zap.Logger, mbtiServ *service.MBTIService, reading *service.ReadingService) *MBTIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MBTIHandler{
		logger:   logger,
		mbtiServ: mbtiServ,
		reading:  reading,
	}
}

type answersRequest struct {
	Answers []domain.Answer `json:"answers" binding:"required,min=1"`
}

// ListQuestions handles GET /mbti/questions.
func (h *MBTIHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.mbtiServ.Questions()})
}

// Classify handles POST /mbti/classify.
func (h *MBTIHandler) Classify(c *gin.Context) {
	req, ok := h.bindAnswers(c)
	if !ok {
		return
	}

	result, err := h.mbtiServ.Classify(c.Request.Context(), req.Answers)
	if err != nil {
		h.writeError(c, "classify", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListTypes handles GET /mbti/types.
func (h *MBTIHandler) ListTypes(c *gin.Context) {
	codes := service.TypeCodes()
	profiles := make([]domain.TypeProfile, 0, len(codes))
	for _, code := range codes {
		profile, err := h.mbtiServ.Profile(code.String())
		if err != nil {
			h.writeError(c, "list types", err)
			return
		}
		profiles = append(profiles, profile)
	}
	c.JSON(http.StatusOK, gin.H{"types": profiles})
}

// GetType handles GET /mbti/types/:code.
func (h *MBTIHandler) GetType(c *gin.Context) {
	profile, err := h.mbtiServ.Profile(c.Param("code"))
	if err != nil {
		h.writeError(c, "get type", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetCompatibility handles GET /mbti/compatibility?a=&b=.
func (h *MBTIHandler) GetCompatibility(c *gin.Context) {
	typeA, typeB := c.Query("a"), c.Query("b")
	if typeA == "" || typeB == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query params a and b are required"})
		return
	}
	result, err := h.mbtiServ.Compatibility(typeA, typeB)
	if err != nil {
		h.writeError(c, "compatibility", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reading handles POST /mbti/reading. Falls back to the static profile text when
// no LLM is configured or the model reply is unusable.
func (h *MBTIHandler) Reading(c *gin.Context) {
	req, ok := h.bindAnswers(c)
	if !ok {
		return
	}

	classification, err := h.mbtiServ.Classify(c.Request.Context(), req.Answers)
	if err != nil {
		h.writeError(c, "reading", err)
		return
	}

	reading, err := h.reading.Generate(c.Request.Context(), classification)
	if err != nil {
		if !errors.Is(err, service.ErrReadingUnavailable) {
			h.writeError(c, "reading", err)
			return
		}
		reading = service.StaticReading(classification)
	}
	c.JSON(http.StatusOK, gin.H{"classification": classification, "reading": reading})
}

// SubmitResult handles POST /mbti/results.
func (h *MBTIHandler) SubmitResult(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	req, ok := h.bindAnswers(c)
	if !ok {
		return
	}

	result, classification, err := h.mbtiServ.Submit(c.Request.Context(), claims.UserID, req.Answers)
	if err != nil {
		h.writeError(c, "submit result", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": result, "classification": classification})
}

// ListResults handles GET /mbti/results?limit=.
func (h *MBTIHandler) ListResults(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 20)
	if !ok {
		return
	}

	results, err := h.mbtiServ.History(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		h.writeError(c, "list results", err)
		return
	}
	if results == nil {
		results = []domain.MBTIResult{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// LatestResult handles GET /mbti/results/latest.
func (h *MBTIHandler) LatestResult(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	result, profile, err := h.mbtiServ.Latest(c.Request.Context(), claims.UserID)
	if err != nil {
		h.writeError(c, "latest result", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "profile": profile})
}

// SimilarResults handles GET /mbti/results/:id/similar?k=.
func (h *MBTIHandler) SimilarResults(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	k, ok := queryInt(c, "k", 5)
	if !ok {
		return
	}

	results, err := h.mbtiServ.Similar(c.Request.Context(), claims.UserID, c.Param("id"), k)
	if err != nil {
		h.writeError(c, "similar results", err)
		return
	}
	if results == nil {
		results = []domain.MBTIResult{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// SaveDraft handles PUT /mbti/draft.
func (h *MBTIHandler) SaveDraft(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	req, ok := h.bindAnswers(c)
	if !ok {
		return
	}

	draft, err := h.mbtiServ.SaveDraft(c.Request.Context(), claims.UserID, req.Answers)
	if err != nil {
		h.writeError(c, "save draft", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetDraft handles GET /mbti/draft.
func (h *MBTIHandler) GetDraft(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	draft, err := h.mbtiServ.LoadDraft(c.Request.Context(), claims.UserID)
	if err != nil {
		h.writeError(c, "load draft", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DeleteDraft handles DELETE /mbti/draft.
func (h *MBTIHandler) DeleteDraft(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	if err := h.mbtiServ.DiscardDraft(c.Request.Context(), claims.UserID); err != nil {
		h.writeError(c, "delete draft", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MBTIHandler) bindAnswers(c *gin.Context) (answersRequest, bool) {
	var req answersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid mbti answers request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return answersRequest{}, false
	}
	return req, true
}

func (h *MBTIHandler) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrMBTIInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownType):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrResultNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
	case errors.Is(err, service.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	case errors.Is(err, service.ErrMBTIServiceNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "result storage unavailable"})
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func requireClaims(c *gin.Context) (service.Claims, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok || claims.UserID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return service.Claims{}, false
	}
	return claims, true
}

func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return v, true
}
