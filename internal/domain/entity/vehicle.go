package entity

import "time"

// Estados de un vehículo en el registro.
const (
	VehicleStatusActive   = "active"
	VehicleStatusInactive = "inactive"
	VehicleStatusSold     = "sold"
)

// Vehicle representa un vehículo registrado en el taller.
//
// Brand, Model y Color guardan el valor del catálogo (ej. "toyota", "corolla",
// "white"); cuando el valor es "other", CustomBrand/CustomModel/CustomColor
// llevan el texto libre ingresado por el usuario.
type Vehicle struct {
	ID           int64
	Plate        string // siempre en mayúsculas, sin espacios
	Client       string
	Brand        string
	CustomBrand  string
	Model        string
	CustomModel  string
	Year         int
	Color        string
	CustomColor  string
	VIN          string
	Notes        string
	TireType     string // ej. "205/55R16"
	FilterType   string // ej. "Mann HU 816 x"
	Status       string
	RegisteredAt time.Time
	UpdatedAt    time.Time
}
