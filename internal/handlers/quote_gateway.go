package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"freightflow/internal/database/models"
	"freightflow/internal/freight"
	"freightflow/internal/middleware"
	"freightflow/internal/store"
)

type QuoteHTTPHandler struct {
	store *store.Store
}

func NewQuoteHTTPHandler(s *store.Store) *QuoteHTTPHandler {
	return &QuoteHTTPHandler{store: s}
}

type ListQuotesQuery struct {
	Status     string `form:"status"`
	CustomerID int64  `form:"customer_id"`
	FromDate   string `form:"from_date"`
	ToDate     string `form:"to_date"`
}

type CreateQuoteRequest struct {
	CustomerID    int64                   `json:"customerId" binding:"required"`
	Origin        models.Location         `json:"origin" binding:"required"`
	Destination   models.Location         `json:"destination" binding:"required"`
	ContainerInfo *models.ContainerInfo   `json:"containerInfo,omitempty"`
	ServiceType   string                  `json:"serviceType" binding:"required"`
	PickupDate    string                  `json:"pickupDate" binding:"required"`
	DeliveryDate  *string                 `json:"deliveryDate,omitempty"`
	Rates         models.RateBreakdown    `json:"rates" binding:"required"`
	CostBasis     string                  `json:"costBasis,omitempty"`
	CarrierQuotes models.CarrierQuoteList `json:"carrierQuotes,omitempty"`
	ValidUntil    string                  `json:"validUntil,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
}

type UpdateQuoteRequest struct {
	Origin        *models.Location        `json:"origin,omitempty"`
	Destination   *models.Location        `json:"destination,omitempty"`
	ContainerInfo *models.ContainerInfo   `json:"containerInfo,omitempty"`
	ServiceType   *string                 `json:"serviceType,omitempty"`
	PickupDate    *string                 `json:"pickupDate,omitempty"`
	DeliveryDate  *string                 `json:"deliveryDate,omitempty"`
	Rates         *models.RateBreakdown   `json:"rates,omitempty"`
	CostBasis     string                  `json:"costBasis,omitempty"`
	CarrierQuotes models.CarrierQuoteList `json:"carrierQuotes,omitempty"`
	ValidUntil    *string                 `json:"validUntil,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
}

type UpdateQuoteStatusRequest struct {
	Status            string `json:"status" binding:"required"`
	SelectedCarrierID *int64 `json:"selectedCarrierId,omitempty"`
}

// applyQuoteUpdate merges provided fields into the quote and reprices it when
// the rate breakdown or cost basis changed. Quotes in a terminal status are
// frozen. Without a fresh cost basis the previous one is recovered from the
// stored total and margin, so marginPercent stays consistent with the new
// total.
func applyQuoteUpdate(quote *models.Quote, req UpdateQuoteRequest) error {
	if quote.Status != freight.QuoteStatusDraft && quote.Status != freight.QuoteStatusPending {
		return fmt.Errorf("quote is %s and can no longer be edited", quote.Status)
	}

	if req.Origin != nil {
		quote.Origin = *req.Origin
	}
	if req.Destination != nil {
		quote.Destination = *req.Destination
	}
	if req.ContainerInfo != nil {
		quote.ContainerInfo = req.ContainerInfo
	}
	if req.ServiceType != nil {
		quote.ServiceType = *req.ServiceType
	}
	if req.PickupDate != nil {
		quote.PickupDate = *req.PickupDate
	}
	if req.DeliveryDate != nil {
		quote.DeliveryDate = req.DeliveryDate
	}
	if req.CarrierQuotes != nil {
		quote.CarrierQuotes = req.CarrierQuotes
	}
	if req.ValidUntil != nil {
		quote.ValidUntil = *req.ValidUntil
	}
	if req.Notes != nil {
		quote.Notes = req.Notes
	}

	if req.Rates == nil && req.CostBasis == "" {
		return nil
	}

	var cost decimal.Decimal
	if req.CostBasis != "" {
		c, err := decimal.NewFromString(req.CostBasis)
		if err != nil {
			return fmt.Errorf("invalid cost basis %q", req.CostBasis)
		}
		cost = c
	} else {
		prevTotal, _ := decimal.NewFromString(quote.TotalRate)
		prevMargin, _ := decimal.NewFromString(quote.MarginPercent)
		cost = freight.CostFromMargin(prevTotal, prevMargin)
	}

	if req.Rates != nil {
		quote.Rates = *req.Rates
	}
	total := freight.TotalRate(quote.Rates)
	quote.TotalRate = total.StringFixed(2)
	quote.MarginPercent = freight.MarginPercent(total, cost).StringFixed(2)
	return nil
}

func (h *QuoteHTTPHandler) ListQuotes(c *gin.Context) {
	var query ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}
	if query.Status != "" && !freight.IsQuoteStatus(query.Status) {
		c.JSON(http.StatusBadRequest, errorResponse("Unknown quote status: "+query.Status))
		return
	}

	quotes := h.store.ListQuotes(store.QuoteFilter{
		Status:     query.Status,
		CustomerID: query.CustomerID,
		FromDate:   query.FromDate,
		ToDate:     query.ToDate,
	})
	c.JSON(http.StatusOK, successWithMetaResponse("Quotes retrieved", quotes, gin.H{
		"total": len(quotes),
	}))
}

func (h *QuoteHTTPHandler) GetQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid quote ID"))
		return
	}

	quote := h.store.GetQuoteByID(id)
	if quote == nil {
		c.JSON(http.StatusOK, nullResponse("Quote not found"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Quote retrieved", quote))
}

func (h *QuoteHTTPHandler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	if customer := h.store.GetCompanyByID(req.CustomerID); customer == nil {
		c.JSON(http.StatusBadRequest, errorResponse("Customer company not found"))
		return
	}

	quote := models.Quote{
		CustomerID:    req.CustomerID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		ContainerInfo: req.ContainerInfo,
		ServiceType:   req.ServiceType,
		PickupDate:    req.PickupDate,
		DeliveryDate:  req.DeliveryDate,
		Rates:         req.Rates,
		CarrierQuotes: req.CarrierQuotes,
		ValidUntil:    req.ValidUntil,
		Notes:         req.Notes,
	}
	if userID, ok := c.Get(middleware.ContextUserIDKey); ok {
		id := userID.(int64)
		quote.CreatedBy = &id
	}

	if err := h.store.CreateQuote(&quote, req.CostBasis); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create quote: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, successResponse("Quote created", gin.H{
		"quoteId": quote.ID,
		"quote":   quote,
	}))
}

// UpdateQuote applies a partial field update to a draft or pending quote;
// absent fields keep their stored values.
func (h *QuoteHTTPHandler) UpdateQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid quote ID"))
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	quote := h.store.GetQuoteByID(id)
	if quote == nil {
		c.JSON(http.StatusBadRequest, errorResponse("Quote not found"))
		return
	}

	if err := applyQuoteUpdate(quote, req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.store.UpdateQuote(quote); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update quote: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, successResponse("Quote updated", quote))
}

func (h *QuoteHTTPHandler) UpdateQuoteStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid quote ID"))
		return
	}

	var req UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	quote, err := h.store.UpdateQuoteStatus(id, req.Status, req.SelectedCarrierID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Quote status updated", quote))
}
