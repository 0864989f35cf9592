package dto

import (
	"time"

	"github.com/dmstancu/workshop-api/internal/models"
)

// LineItemDTO represents one billed component with its computed total.
type LineItemDTO struct {
	Description string  `json:"descriere"`
	Quantity    float64 `json:"cantitate"`
	UnitPrice   int64   `json:"pret_unitar"`
	Total       int64   `json:"total"`
}

// TrackingDTO is the public, tenant-unscoped view of a work order returned
// to whoever holds its tracking code.
type TrackingDTO struct {
	Code         string        `json:"code"`
	Status       string        `json:"status"`
	StatusLabel  string        `json:"status_label"`
	PlateNumber  string        `json:"nr_inmatriculare"`
	VehicleType  string        `json:"tip_auto"`
	MechanicName string        `json:"nume_mecanic"`
	Description  string        `json:"descriere_generala"`
	TotalNet     int64         `json:"total_net"`
	VATAmount    int64         `json:"vat_amount"`
	TotalGross   int64         `json:"total_gross"`
	Data         time.Time     `json:"data"`
	Items        []LineItemDTO `json:"items"`
}

// ToLineItemDTO converts a LineItem model to its DTO.
func ToLineItemDTO(item models.LineItem) LineItemDTO {
	return LineItemDTO{
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Total:       item.Total(),
	}
}

// ToTrackingDTO converts a work order to the public tracking view.
func ToTrackingDTO(order models.WorkOrder) TrackingDTO {
	items := make([]LineItemDTO, len(order.Items))
	for i, item := range order.Items {
		items[i] = ToLineItemDTO(item)
	}

	return TrackingDTO{
		Code:         order.PublicCode,
		Status:       string(order.Status),
		StatusLabel:  models.StatusLabel(order.Status),
		PlateNumber:  order.PlateNumber,
		VehicleType:  order.VehicleType,
		MechanicName: order.MechanicName,
		Description:  order.Description,
		TotalNet:     order.TotalNet,
		VATAmount:    order.VATAmount,
		TotalGross:   order.TotalGross,
		Data:         order.Data,
		Items:        items,
	}
}
