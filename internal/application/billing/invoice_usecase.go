package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	domainbilling "github.com/jhoicas/taller-api/internal/domain/billing"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/pkg/money"
)

// Intentos de inserción ante colisión de número de factura (sufijo aleatorio).
const maxNumberAttempts = 3

// InvoiceUseCase casos de uso de facturas: crear, consultar, cambiar estado,
// eliminar y resumir por vehículo. Todo el cálculo vive en el dominio
// (domain/billing); aquí solo orquestación y persistencia.
type InvoiceUseCase struct {
	txRunner       TxRunner
	invoiceRepo    repository.InvoiceRepository
	vehicleRepo    repository.VehicleRepository
	defaultTaxRate string // porcentaje, ej. "18" (ITBIS)
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	vehicleRepo repository.VehicleRepository,
	defaultTaxRate string,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:       txRunner,
		invoiceRepo:    invoiceRepo,
		vehicleRepo:    vehicleRepo,
		defaultTaxRate: defaultTaxRate,
	}
}

// Create calcula los totales desde los borradores del formulario y persiste
// cabecera y líneas en una sola transacción.
//
// El número FAC-YYYYMM-NNNN se genera una única vez; si choca con uno
// existente (sufijo aleatorio) se reintenta con un número nuevo hasta
// maxNumberAttempts veces antes de rendirse con ErrDuplicate.
func (uc *InvoiceUseCase) Create(ctx context.Context, vehicleID int64, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	vehicle, err := uc.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}

	taxRate := strings.TrimSpace(in.TaxRate)
	if taxRate == "" {
		taxRate = uc.defaultTaxRate
	}
	drafts := make([]domainbilling.LineItemDraft, 0, len(in.Items))
	for _, it := range in.Items {
		drafts = append(drafts, domainbilling.LineItemDraft{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	totals, err := domainbilling.ComputeInvoiceTotals(drafts, taxRate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &entity.Invoice{
		VehiclePlate: vehicle.Plate,
		VehicleID:    vehicle.ID,
		Items:        totals.Items,
		Subtotal:     totals.Subtotal,
		TaxRate:      totals.TaxRate,
		Tax:          totals.Tax,
		Total:        totals.Total,
		Notes:        strings.TrimSpace(in.Notes),
		Status:       entity.InvoiceStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		inv.InvoiceNumber = domainbilling.GenerateInvoiceNumber(now)
		err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
			if err := invoiceRepo.Create(inv); err != nil {
				return err
			}
			for i, item := range inv.Items {
				if err := invoiceRepo.CreateItem(inv.ID, i, item); err != nil {
					return err
				}
			}
			return nil
		})
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, inv.Items), nil
}

// Get obtiene una factura completa con sus líneas.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// ListByVehicle lista las facturas del vehículo, más recientes primero
// (cabeceras sin líneas).
func (uc *InvoiceUseCase) ListByVehicle(ctx context.Context, vehicleID int64) ([]*dto.InvoiceResponse, error) {
	vehicle, err := uc.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.invoiceRepo.ListByVehicle(vehicleID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv, nil))
	}
	return out, nil
}

// UpdateStatus aplica la transición de estado del dominio y persiste solo
// estado y paidAt; los totales nunca se reescriben.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id int64, in dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	updated, err := domainbilling.TransitionStatus(*inv, in.Status, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.UpdateStatus(updated.ID, updated.Status, updated.PaidAt, updated.UpdatedAt); err != nil {
		return nil, err
	}
	items, err := uc.invoiceRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(&updated, items), nil
}

// Delete elimina una factura y sus líneas.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// VehicleSummary agrega las facturas del vehículo: total de facturas y sumas
// pendiente/pagado (canceladas excluidas).
func (uc *InvoiceUseCase) VehicleSummary(ctx context.Context, vehicleID int64) (*dto.VehicleBillingSummaryResponse, error) {
	vehicle, err := uc.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.invoiceRepo.ListByVehicle(vehicleID)
	if err != nil {
		return nil, err
	}
	invoices := make([]entity.Invoice, 0, len(list))
	for _, inv := range list {
		invoices = append(invoices, *inv)
	}
	summary := domainbilling.AggregateByStatus(invoices)
	return &dto.VehicleBillingSummaryResponse{
		InvoiceCount:          len(list),
		PendingTotal:          summary.PendingTotal,
		PaidTotal:             summary.PaidTotal,
		PendingTotalFormatted: money.FormatDOP(summary.PendingTotal),
		PaidTotalFormatted:    money.FormatDOP(summary.PaidTotal),
	}, nil
}

func toInvoiceResponse(inv *entity.Invoice, items []entity.LineItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		VehiclePlate:   inv.VehiclePlate,
		VehicleID:      inv.VehicleID,
		Subtotal:       inv.Subtotal,
		TaxRate:        inv.TaxRate,
		Tax:            inv.Tax,
		Total:          inv.Total,
		TotalFormatted: money.FormatDOP(inv.Total),
		Notes:          inv.Notes,
		Status:         inv.Status,
		CreatedAt:      inv.CreatedAt,
		PaidAt:         inv.PaidAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return resp
}
