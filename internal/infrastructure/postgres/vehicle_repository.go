package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository (usable con pool o tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, plate, client, brand, custom_brand, model, custom_model, year,
	color, custom_color, vin, notes, tire_type, filter_type, status, registered_at, updated_at`

// Create persiste un vehículo nuevo y asigna su ID.
func (r *VehicleRepo) Create(v *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (plate, client, brand, custom_brand, model, custom_model, year,
			color, custom_color, vin, notes, tire_type, filter_type, status, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.Plate, nullIfEmpty(v.Client), v.Brand, nullIfEmpty(v.CustomBrand),
		v.Model, nullIfEmpty(v.CustomModel), v.Year,
		v.Color, nullIfEmpty(v.CustomColor), nullIfEmpty(v.VIN), nullIfEmpty(v.Notes),
		nullIfEmpty(v.TireType), nullIfEmpty(v.FilterType), v.Status, v.RegisteredAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	var client, customBrand, customModel, customColor, vin, notes, tireType, filterType *string
	err := row.Scan(
		&v.ID, &v.Plate, &client, &v.Brand, &customBrand, &v.Model, &customModel, &v.Year,
		&v.Color, &customColor, &vin, &notes, &tireType, &filterType, &v.Status,
		&v.RegisteredAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Client = derefStr(client)
	v.CustomBrand = derefStr(customBrand)
	v.CustomModel = derefStr(customModel)
	v.CustomColor = derefStr(customColor)
	v.VIN = derefStr(vin)
	v.Notes = derefStr(notes)
	v.TireType = derefStr(tireType)
	v.FilterType = derefStr(filterType)
	return &v, nil
}

// GetByID obtiene un vehículo por ID; (nil, nil) si no existe.
func (r *VehicleRepo) GetByID(id int64) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

// GetByPlate obtiene un vehículo por placa; (nil, nil) si no existe.
func (r *VehicleRepo) GetByPlate(plate string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate = $1`
	v, err := scanVehicle(r.q.QueryRow(context.Background(), query, plate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle by plate: %w", err)
	}
	return v, nil
}

// List lista vehículos ordenados por fecha de registro descendente; status
// vacío lista todos.
func (r *VehicleRepo) List(status string, limit, offset int) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles
		WHERE ($1 = '' OR status = $1)
		ORDER BY registered_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables del vehículo.
func (r *VehicleRepo) Update(v *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET plate = $2, client = $3, brand = $4, custom_brand = $5, model = $6,
		    custom_model = $7, year = $8, color = $9, custom_color = $10, vin = $11,
		    notes = $12, tire_type = $13, filter_type = $14, status = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Plate, nullIfEmpty(v.Client), v.Brand, nullIfEmpty(v.CustomBrand),
		v.Model, nullIfEmpty(v.CustomModel), v.Year, v.Color, nullIfEmpty(v.CustomColor),
		nullIfEmpty(v.VIN), nullIfEmpty(v.Notes), nullIfEmpty(v.TireType), nullIfEmpty(v.FilterType),
		v.Status, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

// Delete elimina un vehículo; los registros de servicio caen en cascada.
func (r *VehicleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}
