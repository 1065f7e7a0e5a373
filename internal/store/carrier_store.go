package store

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/database/models"
)

func (s *Store) CreateCarrier(carrier *models.Carrier) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	return s.db.Create(carrier).Error
}

func (s *Store) GetCarrierByID(id int64) *models.Carrier {
	if s.unavailable("GetCarrierByID") {
		return nil
	}

	var carrier models.Carrier
	if err := s.db.Preload("Drivers").First(&carrier, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] GetCarrierByID: %v", err)
		}
		return nil
	}
	return &carrier
}

func (s *Store) ListCarriers(status string) []models.Carrier {
	carriers := []models.Carrier{}
	if s.unavailable("ListCarriers") {
		return carriers
	}

	query := s.db.Order("id")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&carriers).Error; err != nil {
		log.Printf("[store] ListCarriers: %v", err)
		return []models.Carrier{}
	}
	return carriers
}

func (s *Store) ListCarriersByCompany(companyID int64) []models.Carrier {
	carriers := []models.Carrier{}
	if s.unavailable("ListCarriersByCompany") {
		return carriers
	}
	if err := s.db.Where("company_id = ?", companyID).Order("id").Find(&carriers).Error; err != nil {
		log.Printf("[store] ListCarriersByCompany: %v", err)
		return []models.Carrier{}
	}
	return carriers
}

func (s *Store) UpdateCarrier(carrier *models.Carrier) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	// The carrier may have been loaded with drivers preloaded; only the
	// carrier row itself is written.
	return s.db.Omit(clause.Associations).Save(carrier).Error
}

// GetCarrierRates looks up the rate cards applicable to a lane on a given
// date. Zone and container-size filters are optional; the date must fall in
// the card's effective window (open-ended when expiry_date is null).
func (s *Store) GetCarrierRates(carrierID int64, originZone, destinationZone, containerSize, onDate string) []models.RateCard {
	cards := []models.RateCard{}
	if s.unavailable("GetCarrierRates") {
		return cards
	}

	query := s.db.Where("carrier_id = ?", carrierID)
	if originZone != "" {
		query = query.Where("origin_zone = ?", originZone)
	}
	if destinationZone != "" {
		query = query.Where("destination_zone = ?", destinationZone)
	}
	if containerSize != "" {
		query = query.Where("container_size = ?", containerSize)
	}
	if onDate != "" {
		query = query.Where("effective_date <= ?", onDate).
			Where("expiry_date IS NULL OR expiry_date >= ?", onDate)
	}

	if err := query.Order("id").Find(&cards).Error; err != nil {
		log.Printf("[store] GetCarrierRates: %v", err)
		return []models.RateCard{}
	}
	return cards
}

func (s *Store) CreateRateCard(card *models.RateCard) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	return s.db.Create(card).Error
}

func (s *Store) CreateDriver(driver *models.Driver) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	return s.db.Create(driver).Error
}

func (s *Store) GetDriverByID(id int64) *models.Driver {
	if s.unavailable("GetDriverByID") {
		return nil
	}

	var driver models.Driver
	if err := s.db.First(&driver, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] GetDriverByID: %v", err)
		}
		return nil
	}
	return &driver
}

func (s *Store) ListDriversByCarrier(carrierID int64) []models.Driver {
	drivers := []models.Driver{}
	if s.unavailable("ListDriversByCarrier") {
		return drivers
	}
	if err := s.db.Where("carrier_id = ?", carrierID).Order("id").Find(&drivers).Error; err != nil {
		log.Printf("[store] ListDriversByCarrier: %v", err)
		return []models.Driver{}
	}
	return drivers
}

func (s *Store) ListAccessorials() []models.Accessorial {
	accessorials := []models.Accessorial{}
	if s.unavailable("ListAccessorials") {
		return accessorials
	}
	if err := s.db.Order("code").Find(&accessorials).Error; err != nil {
		log.Printf("[store] ListAccessorials: %v", err)
		return []models.Accessorial{}
	}
	return accessorials
}

func (s *Store) GetAccessorialByCode(code string) *models.Accessorial {
	if s.unavailable("GetAccessorialByCode") {
		return nil
	}

	var accessorial models.Accessorial
	if err := s.db.Where("code = ?", code).First(&accessorial).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] GetAccessorialByCode: %v", err)
		}
		return nil
	}
	return &accessorial
}

func (s *Store) CreateAccessorial(accessorial *models.Accessorial) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	return s.db.Create(accessorial).Error
}
