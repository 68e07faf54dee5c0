package dto

import "time"

// VehicleFormRequest body para POST /api/vehicles y PUT /api/vehicles/:id.
// Brand/Model/Color son valores de catálogo; cuando alguno es "other", el
// campo custom correspondiente lleva el texto libre.
type VehicleFormRequest struct {
	Plate       string `json:"plate"`
	Client      string `json:"client,omitempty"`
	Brand       string `json:"brand"`
	CustomBrand string `json:"custom_brand,omitempty"`
	Model       string `json:"model"`
	CustomModel string `json:"custom_model,omitempty"`
	Year        int    `json:"year"`
	Color       string `json:"color"`
	CustomColor string `json:"custom_color,omitempty"`
	VIN         string `json:"vin,omitempty"`
	Notes       string `json:"notes,omitempty"`
	TireType    string `json:"tire_type,omitempty"`
	FilterType  string `json:"filter_type,omitempty"`
	Status      string `json:"status,omitempty"` // solo en actualización
}

// VehicleListRequest query params para GET /api/vehicles.
type VehicleListRequest struct {
	PageRequest
	Search string `query:"search"`
	Status string `query:"status"`
}

// VehicleResponse vehículo en respuestas, con etiquetas de catálogo resueltas.
type VehicleResponse struct {
	ID           int64     `json:"id"`
	Plate        string    `json:"plate"`
	Client       string    `json:"client,omitempty"`
	Brand        string    `json:"brand"`
	BrandLabel   string    `json:"brand_label"`
	Model        string    `json:"model"`
	ModelLabel   string    `json:"model_label"`
	Year         int       `json:"year"`
	Color        string    `json:"color"`
	ColorLabel   string    `json:"color_label"`
	ColorHex     string    `json:"color_hex"`
	VIN          string    `json:"vin,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	TireType     string    `json:"tire_type,omitempty"`
	FilterType   string    `json:"filter_type,omitempty"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}
