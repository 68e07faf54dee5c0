package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.ServiceRecordRepository = (*ServiceRecordRepo)(nil)

// ServiceRecordRepo implementación de ServiceRecordRepository.
type ServiceRecordRepo struct {
	q Querier
}

func NewServiceRecordRepository(q Querier) *ServiceRecordRepo {
	return &ServiceRecordRepo{q: q}
}

// Create persiste un registro de servicio.
func (r *ServiceRecordRepo) Create(rec *entity.ServiceRecord) error {
	query := `
		INSERT INTO service_records (id, vehicle_id, category, item_type, brand, date, km, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.VehicleID, rec.Category, rec.ItemType, nullIfEmpty(rec.Brand),
		rec.Date, rec.Km, nullIfEmpty(rec.Notes), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service record: %w", err)
	}
	return nil
}

func scanServiceRecord(row pgx.Row) (*entity.ServiceRecord, error) {
	var rec entity.ServiceRecord
	var brand, notes *string
	err := row.Scan(&rec.ID, &rec.VehicleID, &rec.Category, &rec.ItemType, &brand,
		&rec.Date, &rec.Km, &notes, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.Brand = derefStr(brand)
	rec.Notes = derefStr(notes)
	return &rec, nil
}

// GetByID obtiene un registro por ID; (nil, nil) si no existe.
func (r *ServiceRecordRepo) GetByID(id string) (*entity.ServiceRecord, error) {
	query := `
		SELECT id, vehicle_id, category, item_type, brand, date, km, notes, created_at
		FROM service_records WHERE id = $1`
	rec, err := scanServiceRecord(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service record: %w", err)
	}
	return rec, nil
}

// ListByVehicle lista registros del vehículo, más recientes primero.
// category vacío lista todas las categorías.
func (r *ServiceRecordRepo) ListByVehicle(vehicleID int64, category string) ([]*entity.ServiceRecord, error) {
	query := `
		SELECT id, vehicle_id, category, item_type, brand, date, km, notes, created_at
		FROM service_records
		WHERE vehicle_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, vehicleID, category)
	if err != nil {
		return nil, fmt.Errorf("list service records: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceRecord
	for rows.Next() {
		rec, err := scanServiceRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Delete elimina un registro de servicio.
func (r *ServiceRecordRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM service_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service record: %w", err)
	}
	return nil
}
