package dto

import "time"

// AddServiceRecordRequest body para POST /api/vehicles/:id/services.
// Date en formato "2006-01-02".
type AddServiceRecordRequest struct {
	Category string `json:"category"`
	ItemType string `json:"item_type"`
	Brand    string `json:"brand"`
	Date     string `json:"date"`
	Km       int    `json:"km"`
	Notes    string `json:"notes,omitempty"`
}

// ServiceRecordResponse registro de servicio con etiquetas resueltas.
type ServiceRecordResponse struct {
	ID            string    `json:"id"`
	VehicleID     int64     `json:"vehicle_id"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	ItemType      string    `json:"item_type"`
	ItemLabel     string    `json:"item_label"`
	Brand         string    `json:"brand"`
	Date          time.Time `json:"date"`
	Km            int       `json:"km"`
	Notes         string    `json:"notes,omitempty"`
}

// ServiceSummaryResponse conteo de registros por categoría para un vehículo.
type ServiceSummaryResponse struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}
