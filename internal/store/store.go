package store

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrDatabaseUnavailable is returned by write operations when the service is
// running without a database connection. Read operations never return it;
// they degrade to empty results so the dashboard keeps rendering.
var ErrDatabaseUnavailable = errors.New("database not available")

// Store is the single access point for every persisted entity. It is
// constructed once at startup with whatever connection could be established;
// db may be nil when the backend is unreachable.
type Store struct {
	db          *gorm.DB
	ownerOpenID string
}

func New(db *gorm.DB, ownerOpenID string) *Store {
	return &Store{db: db, ownerOpenID: ownerOpenID}
}

func (s *Store) Available() bool {
	return s.db != nil
}

// unavailable logs the degraded read. Callers treat the empty result as
// "backend may be down", not "no rows".
func (s *Store) unavailable(op string) bool {
	if s.db == nil {
		log.Printf("[store] %s skipped: database not available", op)
		return true
	}
	return false
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
