package repository

import "github.com/jhoicas/taller-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	// Create inserta el vehículo y asigna su ID.
	Create(v *entity.Vehicle) error
	GetByID(id int64) (*entity.Vehicle, error)
	GetByPlate(plate string) (*entity.Vehicle, error)
	// List devuelve vehículos ordenados por fecha de registro descendente.
	// status vacío lista todos.
	List(status string, limit, offset int) ([]*entity.Vehicle, error)
	Update(v *entity.Vehicle) error
	Delete(id int64) error
}
