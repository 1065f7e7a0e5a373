package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"freightflow/internal/database/models"
	"freightflow/internal/freight"
	"freightflow/internal/middleware"
	"freightflow/internal/store"
)

type DispatchHTTPHandler struct {
	store *store.Store
}

func NewDispatchHTTPHandler(s *store.Store) *DispatchHTTPHandler {
	return &DispatchHTTPHandler{store: s}
}

type ListDispatchesQuery struct {
	Status    string `form:"status"`
	CarrierID int64  `form:"carrier_id"`
}

type CreateDispatchRequest struct {
	QuoteID             *int64                       `json:"quoteId,omitempty"`
	CustomerID          int64                        `json:"customerId,omitempty"`
	CarrierID           int64                        `json:"carrierId" binding:"required"`
	DriverID            *int64                       `json:"driverId,omitempty"`
	Origin              *models.Location             `json:"origin,omitempty"`
	Destination         *models.Location             `json:"destination,omitempty"`
	Stops               models.StopList              `json:"stops,omitempty"`
	ContainerNumber     *string                      `json:"containerNumber,omitempty"`
	SealNumber          *string                      `json:"sealNumber,omitempty"`
	BillOfLading        *string                      `json:"billOfLading,omitempty"`
	BookingNumber       *string                      `json:"bookingNumber,omitempty"`
	PickupAppointment   string                       `json:"pickupAppointment" binding:"required"`
	DeliveryAppointment string                       `json:"deliveryAppointment" binding:"required"`
	LastFreeDay         *string                      `json:"lastFreeDay,omitempty"`
	CutoffDate          *string                      `json:"cutoffDate,omitempty"`
	CarrierRate         string                       `json:"carrierRate,omitempty"`
	CustomerRate        string                       `json:"customerRate,omitempty"`
	Accessorials        models.AccessorialChargeList `json:"accessorials,omitempty"`
}

type UpdateDispatchStatusRequest struct {
	Status   string           `json:"status" binding:"required"`
	Location string           `json:"location,omitempty"`
	Notes    string           `json:"notes,omitempty"`
	Geo      *models.GeoPoint `json:"geo,omitempty"`
	ETA      *string          `json:"eta,omitempty"`
}

func (h *DispatchHTTPHandler) ListDispatches(c *gin.Context) {
	var query ListDispatchesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}
	if query.Status != "" && !freight.IsDispatchStatus(query.Status) {
		c.JSON(http.StatusBadRequest, errorResponse("Unknown dispatch status: "+query.Status))
		return
	}

	dispatches := h.store.ListDispatches(store.DispatchFilter{
		Status:    query.Status,
		CarrierID: query.CarrierID,
	})
	c.JSON(http.StatusOK, successWithMetaResponse("Dispatches retrieved", dispatches, gin.H{
		"total": len(dispatches),
	}))
}

func (h *DispatchHTTPHandler) ListCarrierDispatches(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid carrier ID"))
		return
	}

	dispatches := h.store.ListDispatchesByCarrier(id)
	c.JSON(http.StatusOK, successWithMetaResponse("Dispatches retrieved", dispatches, gin.H{
		"total": len(dispatches),
	}))
}

func (h *DispatchHTTPHandler) GetDispatch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid dispatch ID"))
		return
	}

	dispatch := h.store.GetDispatchByID(id)
	if dispatch == nil {
		c.JSON(http.StatusOK, nullResponse("Dispatch not found"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Dispatch retrieved", dispatch))
}

// createDispatchErrorStatus distinguishes rejected references (missing quote,
// company, carrier or driver; unaccepted or already-consumed quote) from
// backend failures.
func createDispatchErrorStatus(err error) int {
	msg := err.Error()
	if strings.Contains(msg, "not found") || strings.Contains(msg, "only accepted") ||
		strings.Contains(msg, "already has") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *DispatchHTTPHandler) CreateDispatch(c *gin.Context) {
	var req CreateDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	if req.QuoteID == nil && (req.Origin == nil || req.Destination == nil || req.CustomerID == 0) {
		c.JSON(http.StatusBadRequest, errorResponse("Standalone dispatches require customerId, origin and destination"))
		return
	}

	dispatch := models.Dispatch{
		QuoteID:             req.QuoteID,
		CustomerID:          req.CustomerID,
		CarrierID:           req.CarrierID,
		DriverID:            req.DriverID,
		Stops:               req.Stops,
		ContainerNumber:     req.ContainerNumber,
		SealNumber:          req.SealNumber,
		BillOfLading:        req.BillOfLading,
		BookingNumber:       req.BookingNumber,
		PickupAppointment:   req.PickupAppointment,
		DeliveryAppointment: req.DeliveryAppointment,
		LastFreeDay:         req.LastFreeDay,
		CutoffDate:          req.CutoffDate,
		CarrierRate:         req.CarrierRate,
		CustomerRate:        req.CustomerRate,
		Accessorials:        req.Accessorials,
	}
	if req.Origin != nil {
		dispatch.Origin = *req.Origin
	}
	if req.Destination != nil {
		dispatch.Destination = *req.Destination
	}

	if err := h.store.CreateDispatch(&dispatch); err != nil {
		c.JSON(createDispatchErrorStatus(err), errorResponse("Failed to create dispatch: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, successResponse("Dispatch created", gin.H{
		"dispatchId": dispatch.ID,
		"dispatch":   dispatch,
	}))
}

func (h *DispatchHTTPHandler) UpdateDispatchStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid dispatch ID"))
		return
	}

	var req UpdateDispatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	updatedBy := "system"
	if openID, ok := c.Get(middleware.ContextOpenIDKey); ok {
		updatedBy = openID.(string)
	}

	dispatch, err := h.store.UpdateDispatchStatus(id, store.StatusChange{
		Status:    req.Status,
		Location:  req.Location,
		Notes:     req.Notes,
		UpdatedBy: updatedBy,
		Geo:       req.Geo,
		ETA:       req.ETA,
	})
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Dispatch status updated", dispatch))
}
