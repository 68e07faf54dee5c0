package repository

import (
	"time"

	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	// Create inserta la cabecera y asigna el ID. Retorna domain.ErrDuplicate
	// si invoice_number ya existe (el caller reintenta con un número nuevo).
	Create(inv *entity.Invoice) error
	// CreateItem inserta una línea preservando su posición de captura.
	CreateItem(invoiceID int64, position int, item entity.LineItem) error
	// GetByID devuelve la cabecera sin líneas; (nil, nil) si no existe.
	GetByID(id int64) (*entity.Invoice, error)
	GetItems(invoiceID int64) ([]entity.LineItem, error)
	// ListByVehicle devuelve cabeceras del vehículo ordenadas por fecha de
	// creación descendente.
	ListByVehicle(vehicleID int64) ([]*entity.Invoice, error)
	// UpdateStatus persiste únicamente estado y paidAt; los totales de una
	// factura nunca se reescriben.
	UpdateStatus(id int64, status string, paidAt *time.Time, updatedAt time.Time) error
	Delete(id int64) error
}
