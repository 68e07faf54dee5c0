package registry

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/catalog"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// ServiceRecordUseCase casos de uso del historial de servicios de un vehículo.
type ServiceRecordUseCase struct {
	records  repository.ServiceRecordRepository
	vehicles repository.VehicleRepository
}

// NewServiceRecordUseCase construye el caso de uso.
func NewServiceRecordUseCase(records repository.ServiceRecordRepository, vehicles repository.VehicleRepository) *ServiceRecordUseCase {
	return &ServiceRecordUseCase{records: records, vehicles: vehicles}
}

// Add registra un servicio realizado al vehículo. Categoría y tipo se validan
// contra el catálogo; la fecha llega como "2006-01-02".
func (uc *ServiceRecordUseCase) Add(vehicleID int64, in dto.AddServiceRecordRequest) (*dto.ServiceRecordResponse, error) {
	if !catalog.ValidCategory(in.Category) || !catalog.ValidServiceItem(in.Category, in.ItemType) {
		return nil, domain.ErrInvalidInput
	}
	brand := strings.TrimSpace(in.Brand)
	if brand == "" || in.Km < 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	v, err := uc.vehicles.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	r := &entity.ServiceRecord{
		ID:        uuid.New().String(),
		VehicleID: vehicleID,
		Category:  in.Category,
		ItemType:  in.ItemType,
		Brand:     brand,
		Date:      date,
		Km:        in.Km,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: time.Now(),
	}
	if err := uc.records.Create(r); err != nil {
		return nil, err
	}
	return toServiceRecordResponse(r), nil
}

// List lista los servicios del vehículo, más recientes primero, con filtro
// opcional por categoría.
func (uc *ServiceRecordUseCase) List(vehicleID int64, category string) ([]*dto.ServiceRecordResponse, error) {
	if category != "" && !catalog.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.records.ListByVehicle(vehicleID, category)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toServiceRecordResponse(r))
	}
	return out, nil
}

// Summary cuenta los registros del vehículo por categoría, para las píldoras
// de resumen de la pantalla de historial.
func (uc *ServiceRecordUseCase) Summary(vehicleID int64) (*dto.ServiceSummaryResponse, error) {
	list, err := uc.records.ListByVehicle(vehicleID, "")
	if err != nil {
		return nil, err
	}
	byCategory := map[string]int{
		catalog.CategoryFluids:   0,
		catalog.CategoryFilters:  0,
		catalog.CategoryParts:    0,
		catalog.CategoryServices: 0,
	}
	for _, r := range list {
		byCategory[r.Category]++
	}
	return &dto.ServiceSummaryResponse{
		Total:      len(list),
		ByCategory: byCategory,
	}, nil
}

// Delete elimina un registro de servicio.
func (uc *ServiceRecordUseCase) Delete(id string) error {
	r, err := uc.records.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.records.Delete(id)
}

func toServiceRecordResponse(r *entity.ServiceRecord) *dto.ServiceRecordResponse {
	return &dto.ServiceRecordResponse{
		ID:            r.ID,
		VehicleID:     r.VehicleID,
		Category:      r.Category,
		CategoryLabel: catalog.CategoryLabel(r.Category),
		ItemType:      r.ItemType,
		ItemLabel:     catalog.ServiceItemLabel(r.Category, r.ItemType),
		Brand:         r.Brand,
		Date:          r.Date,
		Km:            r.Km,
		Notes:         r.Notes,
	}
}
