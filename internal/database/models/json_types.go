package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The freight tables keep structured sub-records (addresses, rate breakdowns,
// status history) in single JSON text columns. Each column type below
// implements sql.Scanner and driver.Valuer so reads come back as typed values.

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("failed to scan %T: unsupported source %T", dest, value)
	}
}

type StringArray []string

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = []string{}
		return nil
	}
	return scanJSON(value, a)
}

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Street      string    `json:"street"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Country     string    `json:"country"`
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
}

func (a *Address) Scan(value interface{}) error { return scanJSON(value, a) }
func (a Address) Value() (driver.Value, error)  { return json.Marshal(a) }

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role,omitempty"`
}

type ContactList []Contact

func (l *ContactList) Scan(value interface{}) error {
	if value == nil {
		*l = ContactList{}
		return nil
	}
	return scanJSON(value, l)
}

func (l ContactList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Location is a stop-level address with port and contact details, distinct
// from the billing Address on a Company.
type Location struct {
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	PortCode     string    `json:"portCode,omitempty"`
	Coordinates  *GeoPoint `json:"coordinates,omitempty"`
	ContactName  string    `json:"contactName,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
}

func (loc *Location) Scan(value interface{}) error { return scanJSON(value, loc) }
func (loc Location) Value() (driver.Value, error)  { return json.Marshal(loc) }

type ContainerInfo struct {
	Size        string `json:"size"`
	Type        string `json:"type"`
	GrossWeight int32  `json:"grossWeight,omitempty"`
	Commodity   string `json:"commodity,omitempty"`
	Hazmat      bool   `json:"hazmat,omitempty"`
	HazmatClass string `json:"hazmatClass,omitempty"`
}

func (ci *ContainerInfo) Scan(value interface{}) error { return scanJSON(value, ci) }
func (ci ContainerInfo) Value() (driver.Value, error)  { return json.Marshal(ci) }

type RateComponent struct {
	Description string `json:"description"`
	Quantity    int32  `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Total       string `json:"total"`
}

// RateBreakdown decomposes a quoted price. Amounts are decimal strings to
// match the decimal(18,2) columns they roll up into.
type RateBreakdown struct {
	BaseRate          string          `json:"baseRate"`
	FuelSurcharge     string          `json:"fuelSurcharge"`
	ChassisFee        string          `json:"chassisFee,omitempty"`
	PortCongestion    string          `json:"portCongestion,omitempty"`
	Tolls             string          `json:"tolls,omitempty"`
	AdditionalCharges []RateComponent `json:"additionalCharges,omitempty"`
}

func (rb *RateBreakdown) Scan(value interface{}) error { return scanJSON(value, rb) }
func (rb RateBreakdown) Value() (driver.Value, error)  { return json.Marshal(rb) }

type CarrierQuote struct {
	CarrierID     int64          `json:"carrierId"`
	CarrierName   string         `json:"carrierName"`
	Rate          string         `json:"rate"`
	TransitDays   int32          `json:"transitDays"`
	ValidUntil    string         `json:"validUntil"`
	Status        string         `json:"status"`
	RateBreakdown *RateBreakdown `json:"rateBreakdown,omitempty"`
}

type CarrierQuoteList []CarrierQuote

func (l *CarrierQuoteList) Scan(value interface{}) error {
	if value == nil {
		*l = CarrierQuoteList{}
		return nil
	}
	return scanJSON(value, l)
}

func (l CarrierQuoteList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

type Stop struct {
	Sequence        int32    `json:"sequence"`
	Location        Location `json:"location"`
	Type            string   `json:"type"`
	AppointmentTime string   `json:"appointmentTime,omitempty"`
	ActualTime      string   `json:"actualTime,omitempty"`
}

type StopList []Stop

func (l *StopList) Scan(value interface{}) error {
	if value == nil {
		*l = StopList{}
		return nil
	}
	return scanJSON(value, l)
}

func (l StopList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// AccessorialCharge is a billed instance of an Accessorial on a dispatch.
type AccessorialCharge struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Billable bool   `json:"billable"`
}

type AccessorialChargeList []AccessorialCharge

func (l *AccessorialChargeList) Scan(value interface{}) error {
	if value == nil {
		*l = AccessorialChargeList{}
		return nil
	}
	return scanJSON(value, l)
}

func (l AccessorialChargeList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

type StatusUpdate struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Location  string `json:"location,omitempty"`
	Notes     string `json:"notes,omitempty"`
	UpdatedBy string `json:"updatedBy"`
}

// StatusUpdateList is append-only; entries are never rewritten once recorded.
type StatusUpdateList []StatusUpdate

func (l *StatusUpdateList) Scan(value interface{}) error {
	if value == nil {
		*l = StatusUpdateList{}
		return nil
	}
	return scanJSON(value, l)
}

func (l StatusUpdateList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

type Document struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt"`
	UploadedBy string `json:"uploadedBy"`
}

type DocumentList []Document

func (l *DocumentList) Scan(value interface{}) error {
	if value == nil {
		*l = DocumentList{}
		return nil
	}
	return scanJSON(value, l)
}

func (l DocumentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

type JSONMap map[string]interface{}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	return scanJSON(value, m)
}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return json.Marshal(m)
}
