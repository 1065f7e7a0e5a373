package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"freightflow/internal/database/models"
	"freightflow/internal/store"
)

type CompanyHTTPHandler struct {
	store *store.Store
}

func NewCompanyHTTPHandler(s *store.Store) *CompanyHTTPHandler {
	return &CompanyHTTPHandler{store: s}
}

type CreateCompanyRequest struct {
	Name         string             `json:"name" binding:"required"`
	Type         string             `json:"type" binding:"required,oneof=shipper consignee broker carrier"`
	MCNumber     *string            `json:"mcNumber,omitempty"`
	DOTNumber    *string            `json:"dotNumber,omitempty"`
	TaxID        *string            `json:"taxId,omitempty"`
	CreditLimit  string             `json:"creditLimit,omitempty"`
	PaymentTerms int32              `json:"paymentTerms,omitempty"`
	Address      *models.Address    `json:"address,omitempty"`
	Contacts     models.ContactList `json:"contacts,omitempty"`
}

type UpdateCompanyRequest struct {
	Name         *string            `json:"name,omitempty"`
	Type         *string            `json:"type,omitempty" binding:"omitempty,oneof=shipper consignee broker carrier"`
	MCNumber     *string            `json:"mcNumber,omitempty"`
	DOTNumber    *string            `json:"dotNumber,omitempty"`
	TaxID        *string            `json:"taxId,omitempty"`
	CreditLimit  *string            `json:"creditLimit,omitempty"`
	PaymentTerms *int32             `json:"paymentTerms,omitempty"`
	Address      *models.Address    `json:"address,omitempty"`
	Contacts     models.ContactList `json:"contacts,omitempty"`
}

func (h *CompanyHTTPHandler) ListCompanies(c *gin.Context) {
	companies := h.store.ListCompanies()
	c.JSON(http.StatusOK, successWithMetaResponse("Companies retrieved", companies, gin.H{
		"total": len(companies),
	}))
}

func (h *CompanyHTTPHandler) GetCompany(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid company ID"))
		return
	}

	company := h.store.GetCompanyByID(id)
	if company == nil {
		c.JSON(http.StatusOK, nullResponse("Company not found"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Company retrieved", company))
}

func (h *CompanyHTTPHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	company := models.Company{
		Name:         req.Name,
		Type:         req.Type,
		MCNumber:     req.MCNumber,
		DOTNumber:    req.DOTNumber,
		TaxID:        req.TaxID,
		CreditLimit:  req.CreditLimit,
		PaymentTerms: req.PaymentTerms,
		Address:      req.Address,
		Contacts:     req.Contacts,
	}
	if company.PaymentTerms == 0 {
		company.PaymentTerms = 30
	}

	if err := h.store.CreateCompany(&company); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create company: "+err.Error()))
		return
	}

	c.JSON(http.StatusCreated, successResponse("Company created", gin.H{
		"companyId": company.ID,
		"company":   company,
	}))
}

// UpdateCompany applies a partial update; absent fields keep their stored
// values.
func (h *CompanyHTTPHandler) UpdateCompany(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid company ID"))
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	company := h.store.GetCompanyByID(id)
	if company == nil {
		c.JSON(http.StatusBadRequest, errorResponse("Company not found"))
		return
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Type != nil {
		company.Type = *req.Type
	}
	if req.MCNumber != nil {
		company.MCNumber = req.MCNumber
	}
	if req.DOTNumber != nil {
		company.DOTNumber = req.DOTNumber
	}
	if req.TaxID != nil {
		company.TaxID = req.TaxID
	}
	if req.CreditLimit != nil {
		company.CreditLimit = *req.CreditLimit
	}
	if req.PaymentTerms != nil {
		company.PaymentTerms = *req.PaymentTerms
	}
	if req.Address != nil {
		company.Address = req.Address
	}
	if req.Contacts != nil {
		company.Contacts = req.Contacts
	}

	if err := h.store.UpdateCompany(company); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update company: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, successResponse("Company updated", company))
}

func (h *CompanyHTTPHandler) ListCompanyCarriers(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid company ID"))
		return
	}

	carriers := h.store.ListCarriersByCompany(id)
	c.JSON(http.StatusOK, successWithMetaResponse("Carriers retrieved", carriers, gin.H{
		"total": len(carriers),
	}))
}

func (h *CompanyHTTPHandler) ListCompanyQuotes(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid company ID"))
		return
	}

	quotes := h.store.ListQuotesByCustomer(id)
	c.JSON(http.StatusOK, successWithMetaResponse("Quotes retrieved", quotes, gin.H{
		"total": len(quotes),
	}))
}
