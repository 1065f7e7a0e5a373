package store

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/database/models"
	"freightflow/internal/freight"
)

type DispatchFilter struct {
	Status    string
	CarrierID int64
}

// StatusChange is one dispatch status mutation. Everything it touches
// (status, history append, location, eta, actuals, driver state) is applied
// in a single transaction.
type StatusChange struct {
	Status    string
	Location  string
	Notes     string
	UpdatedBy string
	Geo       *models.GeoPoint
	ETA       *string
}

// CreateDispatch persists a new dispatch, standalone or from an accepted
// quote. When a quote id is present the quote must exist and be accepted,
// and must not already have a dispatch; customer, locations and rate default
// from it. The referenced carrier must exist, and an assigned driver flips to
// on_load.
func (s *Store) CreateDispatch(dispatch *models.Dispatch) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if dispatch.QuoteID != nil {
			var quote models.Quote
			if err := tx.First(&quote, *dispatch.QuoteID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("quote %d not found", *dispatch.QuoteID)
				}
				return err
			}
			if quote.Status != freight.QuoteStatusAccepted {
				return fmt.Errorf("quote %d is %s, only accepted quotes can be dispatched", quote.ID, quote.Status)
			}

			var existing int64
			if err := tx.Model(&models.Dispatch{}).Where("quote_id = ?", quote.ID).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return fmt.Errorf("quote %d already has a dispatch", quote.ID)
			}

			dispatch.CustomerID = quote.CustomerID
			dispatch.Origin = quote.Origin
			dispatch.Destination = quote.Destination
			if dispatch.CustomerRate == "" {
				dispatch.CustomerRate = quote.TotalRate
			}
			if dispatch.CarrierID == 0 && quote.SelectedCarrierID != nil {
				dispatch.CarrierID = *quote.SelectedCarrierID
			}
		}

		if dispatch.CustomerID != 0 {
			var count int64
			if err := tx.Model(&models.Company{}).Where("id = ?", dispatch.CustomerID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("company %d not found", dispatch.CustomerID)
			}
		}

		var carrierCount int64
		if err := tx.Model(&models.Carrier{}).Where("id = ?", dispatch.CarrierID).Count(&carrierCount).Error; err != nil {
			return err
		}
		if carrierCount == 0 {
			return fmt.Errorf("carrier %d not found", dispatch.CarrierID)
		}

		if dispatch.DriverID != nil {
			var driverCount int64
			if err := tx.Model(&models.Driver{}).Where("id = ?", *dispatch.DriverID).Count(&driverCount).Error; err != nil {
				return err
			}
			if driverCount == 0 {
				return fmt.Errorf("driver %d not found", *dispatch.DriverID)
			}
		}

		if dispatch.DispatchNumber == "" {
			dispatch.DispatchNumber = freight.NewDispatchNumber()
		}
		dispatch.Status = freight.DispatchStatusPending

		cost, revenue, profit := freight.DispatchTotals(dispatch.CarrierRate, dispatch.CustomerRate, dispatch.Accessorials)
		dispatch.TotalCost = cost.StringFixed(2)
		dispatch.TotalRevenue = revenue.StringFixed(2)
		dispatch.GrossProfit = profit.StringFixed(2)

		dispatch.StatusHistory = models.StatusUpdateList{{
			Status:    freight.DispatchStatusPending,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Notes:     "dispatch created",
			UpdatedBy: "system",
		}}

		if err := tx.Create(dispatch).Error; err != nil {
			return err
		}

		if dispatch.DriverID != nil {
			if err := tx.Model(&models.Driver{}).Where("id = ?", *dispatch.DriverID).
				Update("status", freight.DriverStatusOnLoad).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) GetDispatchByID(id int64) *models.Dispatch {
	if s.unavailable("GetDispatchByID") {
		return nil
	}

	var dispatch models.Dispatch
	err := s.db.Preload("Customer").Preload("Carrier").Preload("Driver").First(&dispatch, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] GetDispatchByID: %v", err)
		}
		return nil
	}
	return &dispatch
}

func (s *Store) ListDispatches(filter DispatchFilter) []models.Dispatch {
	dispatches := []models.Dispatch{}
	if s.unavailable("ListDispatches") {
		return dispatches
	}

	query := s.db.Order("id")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CarrierID != 0 {
		query = query.Where("carrier_id = ?", filter.CarrierID)
	}

	if err := query.Find(&dispatches).Error; err != nil {
		log.Printf("[store] ListDispatches: %v", err)
		return []models.Dispatch{}
	}
	return dispatches
}

func (s *Store) ListDispatchesByCarrier(carrierID int64) []models.Dispatch {
	return s.ListDispatches(DispatchFilter{CarrierID: carrierID})
}

// UpdateDispatchStatus applies one legal transition. The status write, the
// history append and the location/eta refresh happen in a single update so
// concurrent status changes cannot interleave half-applied state.
func (s *Store) UpdateDispatchStatus(id int64, change StatusChange) (*models.Dispatch, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	var dispatch models.Dispatch
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dispatch, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("dispatch %d not found", id)
			}
			return err
		}

		if err := freight.ValidateDispatchTransition(dispatch.Status, change.Status); err != nil {
			return err
		}

		now := time.Now().UTC().Format(time.RFC3339)
		dispatch.Status = change.Status
		dispatch.StatusHistory = append(dispatch.StatusHistory, models.StatusUpdate{
			Status:    change.Status,
			Timestamp: now,
			Location:  change.Location,
			Notes:     change.Notes,
			UpdatedBy: change.UpdatedBy,
		})
		if change.Geo != nil {
			dispatch.CurrentLocation = change.Geo
		}
		if change.ETA != nil {
			dispatch.ETA = change.ETA
		}

		switch change.Status {
		case freight.DispatchStatusAtPickup:
			if dispatch.ActualPickup == nil {
				dispatch.ActualPickup = &now
			}
		case freight.DispatchStatusDelivered:
			if dispatch.ActualDelivery == nil {
				dispatch.ActualDelivery = &now
			}
		}

		if err := tx.Save(&dispatch).Error; err != nil {
			return err
		}

		// Delivery and cancellation release the driver.
		released := change.Status == freight.DispatchStatusDelivered || change.Status == freight.DispatchStatusCancelled
		if dispatch.DriverID != nil && released {
			if err := tx.Model(&models.Driver{}).Where("id = ?", *dispatch.DriverID).
				Update("status", freight.DriverStatusAvailable).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dispatch, nil
}
