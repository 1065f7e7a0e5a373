package store

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"freightflow/internal/database/models"
)

// UpsertUserInput carries the fields an external-auth callback may supply.
// Nil pointers mean "leave the stored value untouched"; a pointer to an empty
// value intentionally overwrites. A JSON null and an absent field both decode
// to nil, so a stored value cannot be nulled out through this path; callers
// that need to clear a field overwrite it with the empty value instead.
type UpsertUserInput struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}

// upsertUserRow builds the insert row and the conflict update set for an
// upsert. Only provided fields enter the update set, so an unset field never
// clobbers a stored value; last_signed_in is always refreshed.
func (s *Store) upsertUserRow(input UpsertUserInput, signedIn time.Time) (models.User, map[string]interface{}) {
	user := models.User{
		OpenID:       input.OpenID,
		Name:         input.Name,
		Email:        input.Email,
		LoginMethod:  input.LoginMethod,
		Role:         models.RoleUser,
		LastSignedIn: &signedIn,
	}

	updates := map[string]interface{}{
		"last_signed_in": signedIn,
	}
	if input.Name != nil {
		updates["name"] = input.Name
	}
	if input.Email != nil {
		updates["email"] = input.Email
	}
	if input.LoginMethod != nil {
		updates["login_method"] = input.LoginMethod
	}

	if input.Role != nil {
		user.Role = *input.Role
		updates["role"] = *input.Role
	} else if s.ownerOpenID != "" && input.OpenID == s.ownerOpenID {
		// Bootstrap: the configured owner identity becomes admin on login.
		log.Printf("[store] granting admin role to owner open id %s", input.OpenID)
		user.Role = models.RoleAdmin
		updates["role"] = models.RoleAdmin
	}

	return user, updates
}

// UpsertUser creates or refreshes the user row keyed on the external-auth
// open id. Unlike the read paths this propagates failures, including an
// unavailable backend, so login callers can surface the error.
func (s *Store) UpsertUser(input UpsertUserInput) error {
	if input.OpenID == "" {
		return errors.New("user openId is required for upsert")
	}
	if s.db == nil {
		return ErrDatabaseUnavailable
	}

	signedIn := time.Now()
	if input.LastSignedIn != nil {
		signedIn = *input.LastSignedIn
	}

	user, updates := s.upsertUserRow(input, signedIn)

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&user).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (s *Store) GetUserByOpenID(openID string) *models.User {
	if s.unavailable("GetUserByOpenID") {
		return nil
	}

	var user models.User
	if err := s.db.Where("open_id = ?", openID).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] GetUserByOpenID: %v", err)
		}
		return nil
	}
	return &user
}

func (s *Store) GetUserByID(id int64) *models.User {
	if s.unavailable("GetUserByID") {
		return nil
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[store] GetUserByID: %v", err)
		}
		return nil
	}
	return &user
}

func (s *Store) RecordAILog(entry *models.AILog) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}
	return s.db.Create(entry).Error
}

func (s *Store) ListAILogsByUser(userID int64) []models.AILog {
	logs := []models.AILog{}
	if s.unavailable("ListAILogsByUser") {
		return logs
	}
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&logs).Error; err != nil {
		log.Printf("[store] ListAILogsByUser: %v", err)
		return []models.AILog{}
	}
	return logs
}
