package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"freightflow/internal/database/models"
	"freightflow/internal/store"
)

type AccessorialHTTPHandler struct {
	store *store.Store
	redis *redis.Client
}

func NewAccessorialHTTPHandler(s *store.Store, redisClient *redis.Client) *AccessorialHTTPHandler {
	return &AccessorialHTTPHandler{store: s, redis: redisClient}
}

type CreateAccessorialRequest struct {
	Code           string             `json:"code" binding:"required"`
	Name           string             `json:"name" binding:"required"`
	Description    *string            `json:"description,omitempty"`
	DefaultRate    string             `json:"defaultRate,omitempty"`
	RateType       string             `json:"rateType,omitempty" binding:"omitempty,oneof=flat per_hour per_day per_mile"`
	AppliesToTypes models.StringArray `json:"appliesToTypes,omitempty"`
}

// Accessorials are static reference data, so the list is cached long.
func (h *AccessorialHTTPHandler) ListAccessorials(c *gin.Context) {
	var cached []models.Accessorial
	if cacheGet(c.Request.Context(), h.redis, ACCESSORIALS_CACHE_KEY, &cached) {
		c.JSON(http.StatusOK, successWithMetaResponse("Accessorials retrieved", cached, gin.H{
			"total": len(cached),
		}))
		return
	}

	accessorials := h.store.ListAccessorials()
	if len(accessorials) > 0 {
		cacheSet(c.Request.Context(), h.redis, ACCESSORIALS_CACHE_KEY, accessorials, CACHE_TTL_LONG)
	}
	c.JSON(http.StatusOK, successWithMetaResponse("Accessorials retrieved", accessorials, gin.H{
		"total": len(accessorials),
	}))
}

func (h *AccessorialHTTPHandler) GetAccessorial(c *gin.Context) {
	code := c.Param("code")

	accessorial := h.store.GetAccessorialByCode(code)
	if accessorial == nil {
		c.JSON(http.StatusOK, nullResponse("Accessorial not found"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Accessorial retrieved", accessorial))
}

func (h *AccessorialHTTPHandler) CreateAccessorial(c *gin.Context) {
	var req CreateAccessorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	accessorial := models.Accessorial{
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
		DefaultRate:    req.DefaultRate,
		RateType:       req.RateType,
		AppliesToTypes: req.AppliesToTypes,
	}

	if err := h.store.CreateAccessorial(&accessorial); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create accessorial: "+err.Error()))
		return
	}

	cacheDel(c.Request.Context(), h.redis, ACCESSORIALS_CACHE_KEY)

	c.JSON(http.StatusCreated, successResponse("Accessorial created", gin.H{
		"accessorialId": accessorial.ID,
		"accessorial":   accessorial,
	}))
}
