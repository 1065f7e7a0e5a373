package store

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"freightflow/internal/database/models"
)

func (s *Store) CreateCompany(company *models.Company) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	return s.db.Create(company).Error
}

func (s *Store) GetCompanyByID(id int64) *models.Company {
	if s.unavailable("GetCompanyByID") {
		return nil
	}

	var company models.Company
	if err := s.db.First(&company, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] GetCompanyByID: %v", err)
		}
		return nil
	}
	return &company
}

func (s *Store) ListCompanies() []models.Company {
	companies := []models.Company{}
	if s.unavailable("ListCompanies") {
		return companies
	}
	if err := s.db.Order("id").Find(&companies).Error; err != nil {
		log.Printf("[store] ListCompanies: %v", err)
		return []models.Company{}
	}
	return companies
}

func (s *Store) UpdateCompany(company *models.Company) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	return s.db.Save(company).Error
}
