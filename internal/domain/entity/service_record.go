package entity

import "time"

// ServiceRecord representa un servicio o mantenimiento realizado a un vehículo.
// Category e ItemType referencian el catálogo de servicios (catalog.ServiceItems).
type ServiceRecord struct {
	ID        string // uuid
	VehicleID int64
	Category  string // fluids | filters | parts | services
	ItemType  string // ej. "motor_oil", "oil_filter"
	Brand     string // marca o producto usado, ej. "Mobil 1"
	Date      time.Time
	Km        int
	Notes     string
	CreatedAt time.Time
}
