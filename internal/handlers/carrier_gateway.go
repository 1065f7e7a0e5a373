package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"freightflow/internal/database/models"
	"freightflow/internal/store"
)

type CarrierHTTPHandler struct {
	store *store.Store
	redis *redis.Client
}

func NewCarrierHTTPHandler(s *store.Store, redisClient *redis.Client) *CarrierHTTPHandler {
	return &CarrierHTTPHandler{store: s, redis: redisClient}
}

type ListCarriersQuery struct {
	Status string `form:"status"`
}

type CreateCarrierRequest struct {
	CompanyID      *int64             `json:"companyId,omitempty"`
	Name           string             `json:"name" binding:"required"`
	MCNumber       *string            `json:"mcNumber,omitempty"`
	DOTNumber      *string            `json:"dotNumber,omitempty"`
	SCACCode       *string            `json:"scacCode,omitempty"`
	CarrierTypes   models.StringArray `json:"carrierTypes,omitempty"`
	ServiceAreas   models.StringArray `json:"serviceAreas,omitempty"`
	EquipmentTypes models.StringArray `json:"equipmentTypes,omitempty"`
	InsuranceInfo  models.JSONMap     `json:"insuranceInfo,omitempty"`
	Rating         int32              `json:"rating,omitempty"`
	Status         string             `json:"status,omitempty"`
}

type UpdateCarrierRequest struct {
	Name           *string            `json:"name,omitempty"`
	MCNumber       *string            `json:"mcNumber,omitempty"`
	DOTNumber      *string            `json:"dotNumber,omitempty"`
	SCACCode       *string            `json:"scacCode,omitempty"`
	CarrierTypes   models.StringArray `json:"carrierTypes,omitempty"`
	ServiceAreas   models.StringArray `json:"serviceAreas,omitempty"`
	EquipmentTypes models.StringArray `json:"equipmentTypes,omitempty"`
	InsuranceInfo  models.JSONMap     `json:"insuranceInfo,omitempty"`
	Rating         *int32             `json:"rating,omitempty"`
	Status         *string            `json:"status,omitempty" binding:"omitempty,oneof=active inactive pending"`
}

type GetRatesQuery struct {
	OriginZone      string `form:"origin_zone"`
	DestinationZone string `form:"destination_zone"`
	ContainerSize   string `form:"container_size"`
	Date            string `form:"date"`
}

type CreateRateCardRequest struct {
	OriginZone           string  `json:"originZone" binding:"required"`
	DestinationZone      string  `json:"destinationZone" binding:"required"`
	ContainerSize        string  `json:"containerSize" binding:"required"`
	BaseRate             string  `json:"baseRate" binding:"required"`
	FuelSurchargePercent string  `json:"fuelSurchargePercent,omitempty"`
	ChassisFee           string  `json:"chassisFee,omitempty"`
	PortCongestionFee    string  `json:"portCongestionFee,omitempty"`
	EffectiveDate        string  `json:"effectiveDate" binding:"required"`
	ExpiryDate           *string `json:"expiryDate,omitempty"`
}

type CreateDriverRequest struct {
	Name          string  `json:"name" binding:"required"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	LicenseNumber *string `json:"licenseNumber,omitempty"`
	LicenseExpiry *string `json:"licenseExpiry,omitempty"`
	TWICNumber    *string `json:"twicNumber,omitempty"`
	TWICExpiry    *string `json:"twicExpiry,omitempty"`
}

func (h *CarrierHTTPHandler) ListCarriers(c *gin.Context) {
	var query ListCarriersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	// Only the unfiltered list is cached; filtered reads go to the store.
	if query.Status == "" {
		var cached []models.Carrier
		if cacheGet(c.Request.Context(), h.redis, CARRIERS_CACHE_KEY, &cached) {
			c.JSON(http.StatusOK, successWithMetaResponse("Carriers retrieved", cached, gin.H{
				"total": len(cached),
			}))
			return
		}
	}

	carriers := h.store.ListCarriers(query.Status)
	if query.Status == "" && len(carriers) > 0 {
		cacheSet(c.Request.Context(), h.redis, CARRIERS_CACHE_KEY, carriers, CACHE_TTL_SHORT)
	}
	c.JSON(http.StatusOK, successWithMetaResponse("Carriers retrieved", carriers, gin.H{
		"total": len(carriers),
	}))
}

func (h *CarrierHTTPHandler) GetCarrier(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid carrier ID"))
		return
	}

	carrier := h.store.GetCarrierByID(id)
	if carrier == nil {
		c.JSON(http.StatusOK, nullResponse("Carrier not found"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Carrier retrieved", carrier))
}

func (h *CarrierHTTPHandler) CreateCarrier(c *gin.Context) {
	var req CreateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	carrier := models.Carrier{
		CompanyID:      req.CompanyID,
		Name:           req.Name,
		MCNumber:       req.MCNumber,
		DOTNumber:      req.DOTNumber,
		SCACCode:       req.SCACCode,
		CarrierTypes:   req.CarrierTypes,
		ServiceAreas:   req.ServiceAreas,
		EquipmentTypes: req.EquipmentTypes,
		InsuranceInfo:  req.InsuranceInfo,
		Rating:         req.Rating,
		Status:         req.Status,
	}

	if err := h.store.CreateCarrier(&carrier); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create carrier: "+err.Error()))
		return
	}

	cacheDel(c.Request.Context(), h.redis, CARRIERS_CACHE_KEY)

	c.JSON(http.StatusCreated, successResponse("Carrier created", gin.H{
		"carrierId": carrier.ID,
		"carrier":   carrier,
	}))
}

// UpdateCarrier applies a partial update; absent fields keep their stored
// values.
func (h *CarrierHTTPHandler) UpdateCarrier(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid carrier ID"))
		return
	}

	var req UpdateCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	carrier := h.store.GetCarrierByID(id)
	if carrier == nil {
		c.JSON(http.StatusBadRequest, errorResponse("Carrier not found"))
		return
	}

	if req.Name != nil {
		carrier.Name = *req.Name
	}
	if req.MCNumber != nil {
		carrier.MCNumber = req.MCNumber
	}
	if req.DOTNumber != nil {
		carrier.DOTNumber = req.DOTNumber
	}
	if req.SCACCode != nil {
		carrier.SCACCode = req.SCACCode
	}
	if req.CarrierTypes != nil {
		carrier.CarrierTypes = req.CarrierTypes
	}
	if req.ServiceAreas != nil {
		carrier.ServiceAreas = req.ServiceAreas
	}
	if req.EquipmentTypes != nil {
		carrier.EquipmentTypes = req.EquipmentTypes
	}
	if req.InsuranceInfo != nil {
		carrier.InsuranceInfo = req.InsuranceInfo
	}
	if req.Rating != nil {
		carrier.Rating = *req.Rating
	}
	if req.Status != nil {
		carrier.Status = *req.Status
	}

	if err := h.store.UpdateCarrier(carrier); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update carrier: "+err.Error()))
		return
	}

	cacheDel(c.Request.Context(), h.redis, CARRIERS_CACHE_KEY)

	c.JSON(http.StatusOK, successResponse("Carrier updated", carrier))
}

func (h *CarrierHTTPHandler) GetRates(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid carrier ID"))
		return
	}

	var query GetRatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	rates := h.store.GetCarrierRates(id, query.OriginZone, query.DestinationZone, query.ContainerSize, query.Date)
	c.JSON(http.StatusOK, successWithMetaResponse("Rates retrieved", gin.H{"rates": rates}, gin.H{
		"total": len(rates),
	}))
}

func (h *CarrierHTTPHandler) CreateRateCard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid carrier ID"))
		return
	}

	var req CreateRateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	if carrier := h.store.GetCarrierByID(id); carrier == nil {
		c.JSON(http.StatusBadRequest, errorResponse("Carrier not found"))
		return
	}

	card := models.RateCard{
		CarrierID:            id,
		OriginZone:           req.OriginZone,
		DestinationZone:      req.DestinationZone,
		ContainerSize:        req.ContainerSize,
		BaseRate:             req.BaseRate,
		FuelSurchargePercent: req.FuelSurchargePercent,
		ChassisFee:           req.ChassisFee,
		PortCongestionFee:    req.PortCongestionFee,
		EffectiveDate:        req.EffectiveDate,
		ExpiryDate:           req.ExpiryDate,
	}

	if err := h.store.CreateRateCard(&card); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create rate card: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, successResponse("Rate card created", gin.H{
		"rateCardId": card.ID,
		"rateCard":   card,
	}))
}

func (h *CarrierHTTPHandler) ListDrivers(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid carrier ID"))
		return
	}

	drivers := h.store.ListDriversByCarrier(id)
	c.JSON(http.StatusOK, successWithMetaResponse("Drivers retrieved", drivers, gin.H{
		"total": len(drivers),
	}))
}

func (h *CarrierHTTPHandler) GetDriver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid driver ID"))
		return
	}

	driver := h.store.GetDriverByID(id)
	if driver == nil {
		c.JSON(http.StatusOK, nullResponse("Driver not found"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Driver retrieved", driver))
}

func (h *CarrierHTTPHandler) CreateDriver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid carrier ID"))
		return
	}

	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	if carrier := h.store.GetCarrierByID(id); carrier == nil {
		c.JSON(http.StatusBadRequest, errorResponse("Carrier not found"))
		return
	}

	driver := models.Driver{
		CarrierID:     id,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		TWICNumber:    req.TWICNumber,
		TWICExpiry:    req.TWICExpiry,
	}

	if err := h.store.CreateDriver(&driver); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create driver: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, successResponse("Driver created", gin.H{
		"driverId": driver.ID,
		"driver":   driver,
	}))
}
