package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura. Los montos
// salen del registro persistido, nunca se recalculan aquí.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	vehicleRepo repository.VehicleRepository
	generator   InvoicePDFGenerator
	shop        ShopInfo
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	vehicleRepo repository.VehicleRepository,
	generator InvoicePDFGenerator,
	shop ShopInfo,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		vehicleRepo: vehicleRepo,
		generator:   generator,
		shop:        shop,
	}
}

// DownloadInvoicePDF carga la factura con sus líneas y el vehículo asociado,
// y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItems(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	inv.Items = items

	vehicle, err := uc.vehicleRepo.GetByID(inv.VehicleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener vehículo: %w", err)
	}
	// El vehículo puede haberse eliminado después de facturar; el PDF se
	// genera igual con la placa guardada en la factura.

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, vehicle, uc.shop)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	return pdfBytes, fmt.Sprintf("%s.pdf", inv.InvoiceNumber), nil
}
