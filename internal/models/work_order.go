package models

import "time"

type WorkOrderStatus string

const (
	StatusAwaiting   WorkOrderStatus = "asteptare"
	StatusInProgress WorkOrderStatus = "in lucru"
	StatusDone       WorkOrderStatus = "finalizat"
)

// NormalizeStatus coerces unrecognized status input to the awaiting state.
func NormalizeStatus(s WorkOrderStatus) WorkOrderStatus {
	switch s {
	case StatusAwaiting, StatusInProgress, StatusDone:
		return s
	default:
		return StatusAwaiting
	}
}

// StatusLabel maps a stored status to its human-readable label. Unknown
// values pass through unchanged.
func StatusLabel(s WorkOrderStatus) string {
	switch s {
	case StatusAwaiting:
		return "în așteptare"
	case StatusInProgress:
		return "în lucru"
	case StatusDone:
		return "finalizat"
	default:
		return string(s)
	}
}

// WorkOrder is a repair job record (fișă de lucru). Monetary fields are
// integer minor units supplied by the caller and stored verbatim; they are
// not recomputed from line items.
type WorkOrder struct {
	ID           uint64          `gorm:"primarykey" json:"id"`
	Data         time.Time       `gorm:"not null" json:"data"`
	PlateNumber  string          `gorm:"type:varchar(10);not null" json:"nr_inmatriculare"`
	VehicleType  string          `gorm:"type:varchar(100);not null" json:"tip_auto"`
	MechanicName string          `gorm:"type:varchar(100);not null" json:"nume_mecanic"`
	Description  string          `gorm:"type:text" json:"descriere_generala"`
	DurationHrs  float64         `gorm:"default:0" json:"durata_ore"`
	Status       WorkOrderStatus `gorm:"type:varchar(50);default:'asteptare'" json:"status"`
	VATRate      int             `gorm:"default:21" json:"vat_rate"`
	TotalNet     int64           `gorm:"default:0" json:"total_net"`
	VATAmount    int64           `gorm:"default:0" json:"vat_amount"`
	TotalGross   int64           `gorm:"default:0" json:"total_gross"`
	PublicCode   string          `gorm:"type:varchar(16);uniqueIndex" json:"public_code"`
	ClientName   string          `gorm:"type:varchar(120)" json:"client_nume,omitempty"`
	ClientPhone  string          `gorm:"type:varchar(40)" json:"client_telefon,omitempty"`
	WorkshopID   uint64          `gorm:"not null" json:"workshop_id"`

	Workshop Workshop   `gorm:"foreignKey:WorkshopID" json:"-"`
	Items    []LineItem `gorm:"foreignKey:WorkOrderID" json:"articole,omitempty"`
}
