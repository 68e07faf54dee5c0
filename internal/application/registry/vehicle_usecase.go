// Package registry contiene los casos de uso del registro de vehículos y su
// historial de servicios.
package registry

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/catalog"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

var plateRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// VehicleUseCase casos de uso del registro de vehículos.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// validateForm valida placa, catálogos y año. Los campos custom solo se
// conservan cuando el valor de catálogo es "other" (registro tipado en la
// frontera, sin campos sueltos).
func validateForm(in *dto.VehicleFormRequest) error {
	in.Plate = strings.ToUpper(strings.TrimSpace(in.Plate))
	if in.Plate == "" || !plateRe.MatchString(in.Plate) {
		return domain.ErrInvalidInput
	}
	if !catalog.ValidBrand(in.Brand) || !catalog.ValidColor(in.Color) {
		return domain.ErrInvalidInput
	}
	if in.Brand != catalog.Other && !catalog.ValidModel(in.Brand, in.Model) {
		return domain.ErrInvalidInput
	}
	currentYear := time.Now().Year()
	if in.Year < 1900 || in.Year > currentYear+1 {
		return domain.ErrInvalidInput
	}
	if in.Brand != catalog.Other {
		in.CustomBrand = ""
	}
	if in.Model != catalog.Other && in.Brand != catalog.Other {
		in.CustomModel = ""
	}
	if in.Color != catalog.Other {
		in.CustomColor = ""
	}
	return nil
}

// Register registra un vehículo nuevo con estado active.
// Retorna domain.ErrDuplicate si la placa ya existe.
func (uc *VehicleUseCase) Register(in dto.VehicleFormRequest) (*dto.VehicleResponse, error) {
	if err := validateForm(&in); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByPlate(in.Plate)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	v := &entity.Vehicle{
		Plate:        in.Plate,
		Client:       strings.TrimSpace(in.Client),
		Brand:        in.Brand,
		CustomBrand:  strings.TrimSpace(in.CustomBrand),
		Model:        in.Model,
		CustomModel:  strings.TrimSpace(in.CustomModel),
		Year:         in.Year,
		Color:        in.Color,
		CustomColor:  strings.TrimSpace(in.CustomColor),
		VIN:          strings.TrimSpace(in.VIN),
		Notes:        strings.TrimSpace(in.Notes),
		TireType:     strings.TrimSpace(in.TireType),
		FilterType:   strings.TrimSpace(in.FilterType),
		Status:       entity.VehicleStatusActive,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(v); err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

// Get obtiene un vehículo por ID.
func (uc *VehicleUseCase) Get(id int64) (*dto.VehicleResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return toVehicleResponse(v), nil
}

// Update actualiza los datos del vehículo. RegisteredAt no cambia.
func (uc *VehicleUseCase) Update(id int64, in dto.VehicleFormRequest) (*dto.VehicleResponse, error) {
	if err := validateForm(&in); err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if in.Plate != v.Plate {
		other, _ := uc.repo.GetByPlate(in.Plate)
		if other != nil {
			return nil, domain.ErrDuplicate
		}
	}
	status := v.Status
	if in.Status != "" {
		switch in.Status {
		case entity.VehicleStatusActive, entity.VehicleStatusInactive, entity.VehicleStatusSold:
			status = in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	v.Plate = in.Plate
	v.Client = strings.TrimSpace(in.Client)
	v.Brand = in.Brand
	v.CustomBrand = strings.TrimSpace(in.CustomBrand)
	v.Model = in.Model
	v.CustomModel = strings.TrimSpace(in.CustomModel)
	v.Year = in.Year
	v.Color = in.Color
	v.CustomColor = strings.TrimSpace(in.CustomColor)
	v.VIN = strings.TrimSpace(in.VIN)
	v.Notes = strings.TrimSpace(in.Notes)
	v.TireType = strings.TrimSpace(in.TireType)
	v.FilterType = strings.TrimSpace(in.FilterType)
	v.Status = status
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(v); err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

// Delete elimina un vehículo del registro.
func (uc *VehicleUseCase) Delete(id int64) error {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista vehículos con filtro por estado y búsqueda de texto libre sobre
// placa, cliente y etiquetas de marca/modelo, como en la pantalla de listado.
func (uc *VehicleUseCase) List(in dto.VehicleListRequest) ([]*dto.VehicleResponse, error) {
	in.DefaultPage()
	if in.Status != "" {
		switch in.Status {
		case entity.VehicleStatusActive, entity.VehicleStatusInactive, entity.VehicleStatusSold:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	list, err := uc.repo.List(in.Status, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(in.Search))
	out := make([]*dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		out = append(out, toVehicleResponse(v))
	}
	return out, nil
}

func matchesSearch(v *entity.Vehicle, search string) bool {
	brandLabel := catalog.BrandLabel(v.Brand, v.CustomBrand)
	modelLabel := catalog.ModelLabel(v.Brand, v.Model, v.CustomModel)
	return strings.Contains(strings.ToLower(v.Plate), search) ||
		strings.Contains(strings.ToLower(v.Client), search) ||
		strings.Contains(strings.ToLower(brandLabel), search) ||
		strings.Contains(strings.ToLower(modelLabel), search)
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:           v.ID,
		Plate:        v.Plate,
		Client:       v.Client,
		Brand:        v.Brand,
		BrandLabel:   catalog.BrandLabel(v.Brand, v.CustomBrand),
		Model:        v.Model,
		ModelLabel:   catalog.ModelLabel(v.Brand, v.Model, v.CustomModel),
		Year:         v.Year,
		Color:        v.Color,
		ColorLabel:   catalog.ColorLabel(v.Color, v.CustomColor),
		ColorHex:     catalog.ColorHex(v.Color),
		VIN:          v.VIN,
		Notes:        v.Notes,
		TireType:     v.TireType,
		FilterType:   v.FilterType,
		Status:       v.Status,
		RegisteredAt: v.RegisteredAt,
	}
}
