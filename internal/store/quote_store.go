package store

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/database/models"
	"freightflow/internal/freight"
)

// QuoteFilter scopes ListQuotes. Zero values mean "no filter".
type QuoteFilter struct {
	Status     string
	CustomerID int64
	FromDate   string
	ToDate     string
}

// CreateQuote assigns a quote number, derives totalRate from the rate
// breakdown and marginPercent from the supplied cost basis, and persists the
// quote in draft unless a status was set.
func (s *Store) CreateQuote(quote *models.Quote, costBasis string) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}

	if quote.QuoteNumber == "" {
		quote.QuoteNumber = freight.NewQuoteNumber()
	}
	if quote.Status == "" {
		quote.Status = freight.QuoteStatusDraft
	}

	total := freight.TotalRate(quote.Rates)
	quote.TotalRate = total.StringFixed(2)
	quote.MarginPercent = freight.MarginPercent(total, parseDecimal(costBasis)).StringFixed(2)

	return s.db.Create(quote).Error
}

func (s *Store) GetQuoteByID(id int64) *models.Quote {
	if s.unavailable("GetQuoteByID") {
		return nil
	}

	var quote models.Quote
	if err := s.db.Preload("Customer").Preload("SelectedCarrier").First(&quote, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] GetQuoteByID: %v", err)
		}
		return nil
	}
	return &quote
}

func (s *Store) ListQuotes(filter QuoteFilter) []models.Quote {
	quotes := []models.Quote{}
	if s.unavailable("ListQuotes") {
		return quotes
	}

	query := s.db.Order("id")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.FromDate != "" {
		query = query.Where("pickup_date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		query = query.Where("pickup_date <= ?", filter.ToDate)
	}

	if err := query.Find(&quotes).Error; err != nil {
		log.Printf("[store] ListQuotes: %v", err)
		return []models.Quote{}
	}
	return quotes
}

func (s *Store) ListQuotesByCustomer(customerID int64) []models.Quote {
	return s.ListQuotes(QuoteFilter{CustomerID: customerID})
}

// UpdateQuote persists an edited quote row. Field merging and repricing
// happen in the caller; status changes go through UpdateQuoteStatus.
func (s *Store) UpdateQuote(quote *models.Quote) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	// The quote may have been loaded with its customer preloaded; only the
	// quote row itself is written.
	return s.db.Omit(clause.Associations).Save(quote).Error
}

// UpdateQuoteStatus validates the transition before persisting it. The
// optional selectedCarrierID records which sub-quote won on acceptance.
func (s *Store) UpdateQuoteStatus(id int64, status string, selectedCarrierID *int64) (*models.Quote, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	var quote models.Quote
	if err := s.db.First(&quote, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("quote %d not found", id)
		}
		return nil, err
	}

	if err := freight.ValidateQuoteTransition(quote.Status, status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if selectedCarrierID != nil {
		updates["selected_carrier_id"] = *selectedCarrierID
	}
	if err := s.db.Model(&quote).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}
