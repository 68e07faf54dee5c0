package repository

import "github.com/jhoicas/taller-api/internal/domain/entity"

// ServiceRecordRepository define el puerto de persistencia para ServiceRecord.
type ServiceRecordRepository interface {
	Create(r *entity.ServiceRecord) error
	GetByID(id string) (*entity.ServiceRecord, error)
	// ListByVehicle devuelve los registros del vehículo ordenados por fecha
	// descendente. category vacío lista todas las categorías.
	ListByVehicle(vehicleID int64, category string) ([]*entity.ServiceRecord, error)
	Delete(id string) error
}
