package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository. Los montos se leen y
// escriben como NUMERIC gracias al codec de shopspring/decimal registrado
// en el pool.
type InvoiceRepo struct {
	q Querier
}

func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, vehicle_id, vehicle_plate, subtotal, tax_rate, tax,
	total, notes, status, created_at, paid_at, updated_at`

// Create persiste la cabecera de la factura y asigna su ID. Una colisión
// de invoice_number devuelve ErrDuplicate para que el caso de uso reintente
// con otro número.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_number, vehicle_id, vehicle_plate, subtotal, tax_rate, tax,
			total, notes, status, created_at, paid_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		inv.InvoiceNumber, inv.VehicleID, inv.VehiclePlate,
		inv.Subtotal, inv.TaxRate, inv.Tax, inv.Total,
		nullIfEmpty(inv.Notes), inv.Status, inv.CreatedAt, inv.PaidAt, inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la factura en la posición dada.
func (r *InvoiceRepo) CreateItem(invoiceID int64, position int, item entity.LineItem) error {
	query := `
		INSERT INTO invoice_items (invoice_id, position, description, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		invoiceID, position, item.Description, item.Quantity, item.UnitPrice, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var notes *string
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.VehicleID, &inv.VehiclePlate,
		&inv.Subtotal, &inv.TaxRate, &inv.Tax, &inv.Total,
		&notes, &inv.Status, &inv.CreatedAt, &inv.PaidAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Notes = derefStr(notes)
	return &inv, nil
}

// GetByID obtiene la cabecera de una factura; (nil, nil) si no existe.
// Las líneas se cargan aparte con GetItems.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetItems devuelve las líneas de la factura en su orden original.
func (r *InvoiceRepo) GetItems(invoiceID int64) ([]entity.LineItem, error) {
	query := `
		SELECT description, quantity, unit_price, total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var items []entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.Description, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByVehicle lista cabeceras de facturas del vehículo, más recientes primero.
func (r *InvoiceRepo) ListByVehicle(vehicleID int64) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE vehicle_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza estado, paid_at y updated_at de la factura.
func (r *InvoiceRepo) UpdateStatus(id int64, status string, paidAt *time.Time, updatedAt time.Time) error {
	query := `UPDATE invoices SET status = $2, paid_at = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, paidAt, updatedAt)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// Delete elimina la factura; las líneas caen en cascada.
func (r *InvoiceRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
