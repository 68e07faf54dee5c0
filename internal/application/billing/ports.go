// Package billing contiene los casos de uso de facturación: creación de
// facturas desde borradores de formulario, ciclo de estados, resumen por
// vehículo y PDF.
package billing

import (
	"context"

	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un InvoiceRepository atado a una transacción:
// cabecera y líneas de una factura se insertan de forma atómica.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// ShopInfo datos del taller que aparecen en el PDF de la factura.
type ShopInfo struct {
	Name    string
	RNC     string
	Address string
	Phone   string
}

// InvoicePDFGenerator genera la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, vehicle *entity.Vehicle, shop ShopInfo) ([]byte, error)
}
