package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/registry"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// fakeServiceRecordRepo repo en memoria para registros de servicio.
type fakeServiceRecordRepo struct {
	records map[string]*entity.ServiceRecord
}

func newFakeServiceRecordRepo() *fakeServiceRecordRepo {
	return &fakeServiceRecordRepo{records: make(map[string]*entity.ServiceRecord)}
}

func (r *fakeServiceRecordRepo) Create(rec *entity.ServiceRecord) error {
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeServiceRecordRepo) GetByID(id string) (*entity.ServiceRecord, error) {
	return r.records[id], nil
}

func (r *fakeServiceRecordRepo) ListByVehicle(vehicleID int64, category string) ([]*entity.ServiceRecord, error) {
	var out []*entity.ServiceRecord
	for _, rec := range r.records {
		if rec.VehicleID == vehicleID && (category == "" || rec.Category == category) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeServiceRecordRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

func setupServiceUC(t *testing.T) (*registry.ServiceRecordUseCase, int64) {
	t.Helper()
	vehicles := newFakeVehicleRepo()
	vehicleUC := registry.NewVehicleUseCase(vehicles)
	v, err := vehicleUC.Register(validForm())
	require.NoError(t, err)
	return registry.NewServiceRecordUseCase(newFakeServiceRecordRepo(), vehicles), v.ID
}

func oilChange() dto.AddServiceRecordRequest {
	return dto.AddServiceRecordRequest{
		Category: "fluids",
		ItemType: "motor_oil",
		Brand:    "Castrol 10W30",
		Date:     "2025-03-15",
		Km:       85000,
	}
}

func TestAddServiceRecord_Valido(t *testing.T) {
	uc, vehicleID := setupServiceUC(t)

	rec, err := uc.Add(vehicleID, oilChange())
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID, "se asigna un uuid")
	assert.Equal(t, "Fluidos", rec.CategoryLabel)
	assert.Equal(t, "Aceite Motor", rec.ItemLabel)
	assert.Equal(t, 85000, rec.Km)
	assert.Equal(t, "2025-03-15", rec.Date.Format("2006-01-02"))
}

func TestAddServiceRecord_CategoriaOTipoInvalido(t *testing.T) {
	uc, vehicleID := setupServiceUC(t)

	in := oilChange()
	in.Category = "electronica"
	_, err := uc.Add(vehicleID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = oilChange()
	in.ItemType = "tires" // pertenece a parts, no a fluids
	_, err = uc.Add(vehicleID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = oilChange()
	in.Date = "15/03/2025"
	_, err = uc.Add(vehicleID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la fecha debe venir como 2006-01-02")

	in = oilChange()
	in.Km = -1
	_, err = uc.Add(vehicleID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddServiceRecord_VehiculoInexistente(t *testing.T) {
	uc, _ := setupServiceUC(t)

	_, err := uc.Add(999, oilChange())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListServiceRecords_FiltroPorCategoria(t *testing.T) {
	uc, vehicleID := setupServiceUC(t)

	_, err := uc.Add(vehicleID, oilChange())
	require.NoError(t, err)

	filtro := dto.AddServiceRecordRequest{
		Category: "filters",
		ItemType: "oil_filter",
		Brand:    "Toyota OEM",
		Date:     "2025-03-15",
		Km:       85000,
	}
	_, err = uc.Add(vehicleID, filtro)
	require.NoError(t, err)

	fluids, err := uc.List(vehicleID, "fluids")
	require.NoError(t, err)
	require.Len(t, fluids, 1)
	assert.Equal(t, "motor_oil", fluids[0].ItemType)

	all, err := uc.List(vehicleID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.List(vehicleID, "electronica")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceSummary_IncluyeCategoriasEnCero(t *testing.T) {
	uc, vehicleID := setupServiceUC(t)

	_, err := uc.Add(vehicleID, oilChange())
	require.NoError(t, err)

	summary, err := uc.Summary(vehicleID)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.ByCategory["fluids"])
	assert.Equal(t, 0, summary.ByCategory["filters"], "las categorías sin registros aparecen en cero")
	assert.Equal(t, 0, summary.ByCategory["parts"])
	assert.Equal(t, 0, summary.ByCategory["services"])
}

func TestDeleteServiceRecord_Inexistente(t *testing.T) {
	uc, _ := setupServiceUC(t)
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
