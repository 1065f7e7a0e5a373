package models

import "time"

type Company struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string      `gorm:"size:255;not null" json:"name"`
	Type         string      `gorm:"size:20;not null" json:"type"`
	MCNumber     *string     `gorm:"size:20" json:"mcNumber"`
	DOTNumber    *string     `gorm:"size:20" json:"dotNumber"`
	TaxID        *string     `gorm:"size:20" json:"taxId"`
	CreditLimit  string      `gorm:"type:decimal(18,2);default:0" json:"creditLimit"`
	PaymentTerms int32       `gorm:"default:30" json:"paymentTerms"`
	Address      *Address    `gorm:"type:text" json:"address"`
	Contacts     ContactList `gorm:"type:text" json:"contacts"`
	CreatedAt    *time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    *time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Carrier struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID      *int64      `gorm:"index" json:"companyId"`
	Name           string      `gorm:"size:255;not null" json:"name"`
	MCNumber       *string     `gorm:"size:20;uniqueIndex" json:"mcNumber"`
	DOTNumber      *string     `gorm:"size:20" json:"dotNumber"`
	SCACCode       *string     `gorm:"size:4" json:"scacCode"`
	CarrierTypes   StringArray `gorm:"size:100" json:"carrierTypes"`
	ServiceAreas   StringArray `gorm:"type:text" json:"serviceAreas"`
	EquipmentTypes StringArray `gorm:"size:255" json:"equipmentTypes"`
	InsuranceInfo  JSONMap     `gorm:"type:text" json:"insuranceInfo"`
	Rating         int32       `gorm:"default:0" json:"rating"`
	APIEnabled     bool        `gorm:"default:false" json:"apiEnabled"`
	APIConfig      JSONMap     `gorm:"type:text" json:"apiConfig"`
	Status         string      `gorm:"size:20;default:active" json:"status"`
	CreatedAt      *time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	Company   *Company   `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Drivers   []Driver   `gorm:"foreignKey:CarrierID" json:"drivers,omitempty"`
	RateCards []RateCard `gorm:"foreignKey:CarrierID" json:"rateCards,omitempty"`
}

type Driver struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CarrierID       int64      `gorm:"index;not null" json:"carrierId"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	Phone           *string    `gorm:"size:20" json:"phone"`
	Email           *string    `gorm:"size:255" json:"email"`
	LicenseNumber   *string    `gorm:"size:50" json:"licenseNumber"`
	LicenseExpiry   *string    `gorm:"size:10" json:"licenseExpiry"`
	TWICNumber      *string    `gorm:"size:20" json:"twicNumber"`
	TWICExpiry      *string    `gorm:"size:10" json:"twicExpiry"`
	EquipmentID     *int64     `json:"equipmentId"`
	CurrentLocation *GeoPoint  `gorm:"type:text" json:"currentLocation"`
	Status          string     `gorm:"size:20;default:available" json:"status"`
	CreatedAt       *time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Carrier *Carrier `gorm:"foreignKey:CarrierID" json:"carrier,omitempty"`
}

type Quote struct {
	ID                int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	QuoteNumber       string           `gorm:"size:20;uniqueIndex;not null" json:"quoteNumber"`
	CustomerID        int64            `gorm:"index;not null" json:"customerId"`
	Origin            Location         `gorm:"type:text;not null" json:"origin"`
	Destination       Location         `gorm:"type:text;not null" json:"destination"`
	ContainerInfo     *ContainerInfo   `gorm:"type:text" json:"containerInfo"`
	ServiceType       string           `gorm:"size:50" json:"serviceType"`
	PickupDate        string           `gorm:"size:10" json:"pickupDate"`
	DeliveryDate      *string          `gorm:"size:10" json:"deliveryDate"`
	Rates             RateBreakdown    `gorm:"type:text" json:"rates"`
	TotalRate         string           `gorm:"type:decimal(18,2)" json:"totalRate"`
	MarginPercent     string           `gorm:"type:decimal(5,2)" json:"marginPercent"`
	CarrierQuotes     CarrierQuoteList `gorm:"type:text" json:"carrierQuotes"`
	SelectedCarrierID *int64           `json:"selectedCarrierId"`
	AIRecommendation  JSONMap          `gorm:"type:text" json:"aiRecommendation"`
	Status            string           `gorm:"size:30;default:draft" json:"status"`
	ValidUntil        string           `gorm:"size:10" json:"validUntil"`
	Notes             *string          `gorm:"type:text" json:"notes"`
	CreatedBy         *int64           `json:"createdBy"`
	CreatedAt         *time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         *time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	Customer        *Company `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	SelectedCarrier *Carrier `gorm:"foreignKey:SelectedCarrierID" json:"selectedCarrier,omitempty"`
	Creator         *User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

type Dispatch struct {
	ID                  int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	DispatchNumber      string                `gorm:"size:20;uniqueIndex;not null" json:"dispatchNumber"`
	QuoteID             *int64                `gorm:"uniqueIndex" json:"quoteId"`
	CustomerID          int64                 `gorm:"index;not null" json:"customerId"`
	CarrierID           int64                 `gorm:"index;not null" json:"carrierId"`
	DriverID            *int64                `json:"driverId"`
	ContainerNumber     *string               `gorm:"size:20" json:"containerNumber"`
	SealNumber          *string               `gorm:"size:20" json:"sealNumber"`
	BillOfLading        *string               `gorm:"size:30" json:"billOfLading"`
	BookingNumber       *string               `gorm:"size:30" json:"bookingNumber"`
	Origin              Location              `gorm:"type:text;not null" json:"origin"`
	Destination         Location              `gorm:"type:text;not null" json:"destination"`
	Stops               StopList              `gorm:"type:text" json:"stops"`
	PickupAppointment   string                `gorm:"size:30" json:"pickupAppointment"`
	DeliveryAppointment string                `gorm:"size:30" json:"deliveryAppointment"`
	ActualPickup        *string               `gorm:"size:30" json:"actualPickup"`
	ActualDelivery      *string               `gorm:"size:30" json:"actualDelivery"`
	LastFreeDay         *string               `gorm:"size:10" json:"lastFreeDay"`
	CutoffDate          *string               `gorm:"size:30" json:"cutoffDate"`
	CarrierRate         string                `gorm:"type:decimal(18,2)" json:"carrierRate"`
	CustomerRate        string                `gorm:"type:decimal(18,2)" json:"customerRate"`
	Accessorials        AccessorialChargeList `gorm:"type:text" json:"accessorials"`
	TotalCost           string                `gorm:"type:decimal(18,2)" json:"totalCost"`
	TotalRevenue        string                `gorm:"type:decimal(18,2)" json:"totalRevenue"`
	GrossProfit         string                `gorm:"type:decimal(18,2)" json:"grossProfit"`
	Status              string                `gorm:"size:30;default:pending" json:"status"`
	CurrentLocation     *GeoPoint             `gorm:"type:text" json:"currentLocation"`
	ETA                 *string               `gorm:"size:30" json:"eta"`
	StatusHistory       StatusUpdateList      `gorm:"type:text" json:"statusHistory"`
	Documents           DocumentList          `gorm:"type:text" json:"documents"`
	CreatedAt           *time.Time            `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           *time.Time            `gorm:"autoUpdateTime" json:"updatedAt"`

	Quote    *Quote   `gorm:"foreignKey:QuoteID" json:"quote,omitempty"`
	Customer *Company `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Carrier  *Carrier `gorm:"foreignKey:CarrierID" json:"carrier,omitempty"`
	Driver   *Driver  `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
}

// RateCard rows are effective-dated; superseded cards keep their rows and
// expire by date range instead of being deleted.
type RateCard struct {
	ID                   int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CarrierID            int64      `gorm:"index;not null" json:"carrierId"`
	OriginZone           string     `gorm:"size:50" json:"originZone"`
	DestinationZone      string     `gorm:"size:50" json:"destinationZone"`
	ContainerSize        string     `gorm:"size:10" json:"containerSize"`
	BaseRate             string     `gorm:"type:decimal(18,2)" json:"baseRate"`
	FuelSurchargePercent string     `gorm:"type:decimal(5,2)" json:"fuelSurchargePercent"`
	ChassisFee           string     `gorm:"type:decimal(18,2);default:0" json:"chassisFee"`
	PortCongestionFee    string     `gorm:"type:decimal(18,2);default:0" json:"portCongestionFee"`
	EffectiveDate        string     `gorm:"size:10" json:"effectiveDate"`
	ExpiryDate           *string    `gorm:"size:10" json:"expiryDate"`
	CreatedAt            *time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Carrier *Carrier `gorm:"foreignKey:CarrierID" json:"carrier,omitempty"`
}

// Accessorial is static reference data for billable ancillary charges.
type Accessorial struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code           string      `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name           string      `gorm:"size:100;not null" json:"name"`
	Description    *string     `gorm:"type:text" json:"description"`
	DefaultRate    string      `gorm:"type:decimal(18,2)" json:"defaultRate"`
	RateType       string      `gorm:"size:20" json:"rateType"`
	AppliesToTypes StringArray `gorm:"size:255" json:"appliesToTypes"`
	CreatedAt      *time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}
