package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"freightflow/internal/database/models"
	"freightflow/internal/middleware"
	"freightflow/internal/store"
)

type SystemHTTPHandler struct {
	store *store.Store
	redis *redis.Client
}

func NewSystemHTTPHandler(s *store.Store, redisClient *redis.Client) *SystemHTTPHandler {
	return &SystemHTTPHandler{store: s, redis: redisClient}
}

type RecordAILogRequest struct {
	SessionID       *string        `json:"sessionId,omitempty"`
	InteractionType string         `json:"interactionType" binding:"required"`
	InputData       models.JSONMap `json:"inputData,omitempty"`
	OutputData      models.JSONMap `json:"outputData,omitempty"`
	ModelUsed       *string        `json:"modelUsed,omitempty"`
	TokensUsed      *int32         `json:"tokensUsed,omitempty"`
	ResponseTimeMs  *int32         `json:"responseTimeMs,omitempty"`
}

// Health reports degraded rather than failing when a backing service is
// down; reads keep working with empty results.
func (h *SystemHTTPHandler) Health(c *gin.Context) {
	status := "healthy"
	httpStatus := http.StatusOK

	unavailableServices := []string{}
	if !h.store.Available() {
		unavailableServices = append(unavailableServices, "database")
	}
	if h.redis == nil {
		unavailableServices = append(unavailableServices, "redis")
	}

	if len(unavailableServices) > 0 {
		status = "degraded"
		httpStatus = http.StatusPartialContent
	}

	c.JSON(httpStatus, gin.H{
		"status":               status,
		"message":              "Server is running",
		"unavailable_services": unavailableServices,
		"timestamp":            time.Now(),
	})
}

func (h *SystemHTTPHandler) ListAILogs(c *gin.Context) {
	userID, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	logs := h.store.ListAILogsByUser(userID.(int64))
	c.JSON(http.StatusOK, successWithMetaResponse("AI logs retrieved", logs, gin.H{
		"total": len(logs),
	}))
}

func (h *SystemHTTPHandler) RecordAILog(c *gin.Context) {
	userID, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	var req RecordAILogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	uid := userID.(int64)
	entry := models.AILog{
		UserID:          &uid,
		SessionID:       req.SessionID,
		InteractionType: &req.InteractionType,
		InputData:       req.InputData,
		OutputData:      req.OutputData,
		ModelUsed:       req.ModelUsed,
		TokensUsed:      req.TokensUsed,
		ResponseTimeMs:  req.ResponseTimeMs,
	}

	if err := h.store.RecordAILog(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to record AI log: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, successResponse("AI log recorded", gin.H{
		"logId": entry.ID,
	}))
}
