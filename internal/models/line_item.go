package models

// LineItem is a billed component (articol de lucrare) of one work order.
// It cannot outlive its parent: deleting a work order deletes its items in
// the same transaction.
type LineItem struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	Description string  `gorm:"type:varchar(200);not null" json:"descriere"`
	Quantity    float64 `gorm:"default:1" json:"cantitate"`
	UnitPrice   int64   `gorm:"default:0" json:"pret_unitar"`
	WorkOrderID uint64  `gorm:"not null" json:"fisa_id"`

	WorkOrder WorkOrder `gorm:"foreignKey:WorkOrderID" json:"-"`
}

// Total is the per-line amount in minor units, computed on read and never
// persisted.
func (li *LineItem) Total() int64 {
	return int64(li.Quantity * float64(li.UnitPrice))
}
