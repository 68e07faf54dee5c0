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

// fakeVehicleRepo repo en memoria que asigna IDs consecutivos.
type fakeVehicleRepo struct {
	nextID   int64
	vehicles map[int64]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[int64]*entity.Vehicle)}
}

func (r *fakeVehicleRepo) Create(v *entity.Vehicle) error {
	r.nextID++
	v.ID = r.nextID
	r.vehicles[v.ID] = v
	return nil
}

func (r *fakeVehicleRepo) GetByID(id int64) (*entity.Vehicle, error) {
	return r.vehicles[id], nil
}

func (r *fakeVehicleRepo) GetByPlate(plate string) (*entity.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.Plate == plate {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVehicleRepo) List(status string, limit, offset int) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		if status == "" || v.Status == status {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(v *entity.Vehicle) error { r.vehicles[v.ID] = v; return nil }
func (r *fakeVehicleRepo) Delete(id int64) error          { delete(r.vehicles, id); return nil }

func validForm() dto.VehicleFormRequest {
	return dto.VehicleFormRequest{
		Plate:  "a123456",
		Client: "Juan Pérez",
		Brand:  "toyota",
		Model:  "corolla",
		Year:   2020,
		Color:  "white",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NormalizaPlacaAMayusculas(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())

	resp, err := uc.Register(validForm())
	require.NoError(t, err)

	assert.Equal(t, "A123456", resp.Plate, "la placa se guarda en mayúsculas")
	assert.Equal(t, entity.VehicleStatusActive, resp.Status, "estado inicial active")
	assert.Equal(t, "Toyota", resp.BrandLabel)
	assert.Equal(t, "Corolla", resp.ModelLabel)
	assert.Equal(t, "#FFFFFF", resp.ColorHex)
}

func TestRegister_PlacaInvalida(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())

	for _, plate := range []string{"", "   ", "ABC 123", "A#123"} {
		form := validForm()
		form.Plate = plate
		_, err := uc.Register(form)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "placa %q", plate)
	}
}

func TestRegister_PlacaDuplicada(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())

	_, err := uc.Register(validForm())
	require.NoError(t, err)

	form := validForm()
	form.Plate = "A123456" // misma placa, ya en mayúsculas
	_, err = uc.Register(form)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_CatalogoInvalido(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())

	form := validForm()
	form.Brand = "ferrari"
	_, err := uc.Register(form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "marca fuera de catálogo")

	form = validForm()
	form.Model = "civic" // modelo de honda en marca toyota
	_, err = uc.Register(form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	form = validForm()
	form.Year = 1899
	_, err = uc.Register(form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CustomSoloConOther(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())

	// Marca de catálogo: el texto libre se descarta.
	form := validForm()
	form.CustomBrand = "DeLorean"
	resp, err := uc.Register(form)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", resp.BrandLabel, "custom_brand se ignora si la marca no es other")

	// Marca other: el texto libre manda.
	form = validForm()
	form.Plate = "B654321"
	form.Brand = "other"
	form.CustomBrand = "DeLorean"
	form.Model = "other"
	form.CustomModel = "DMC-12"
	resp, err = uc.Register(form)
	require.NoError(t, err)
	assert.Equal(t, "DeLorean", resp.BrandLabel)
	assert.Equal(t, "DMC-12", resp.ModelLabel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CambioDeEstado(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())

	created, err := uc.Register(validForm())
	require.NoError(t, err)

	form := validForm()
	form.Status = entity.VehicleStatusSold
	resp, err := uc.Update(created.ID, form)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleStatusSold, resp.Status)

	form.Status = "desguazado"
	_, err = uc.Update(created.ID, form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_PlacaDeOtroVehiculo(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())

	first, err := uc.Register(validForm())
	require.NoError(t, err)

	second := validForm()
	second.Plate = "B654321"
	other, err := uc.Register(second)
	require.NoError(t, err)

	form := validForm()
	form.Plate = first.Plate // placa que ya pertenece a first
	_, err = uc.Update(other.ID, form)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDelete_Inexistente(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())
	assert.ErrorIs(t, uc.Delete(42), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestList_BusquedaPorEtiquetas(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())

	_, err := uc.Register(validForm())
	require.NoError(t, err)

	honda := validForm()
	honda.Plate = "B654321"
	honda.Client = "María Gómez"
	honda.Brand = "honda"
	honda.Model = "crv"
	_, err = uc.Register(honda)
	require.NoError(t, err)

	cases := map[string]string{
		"a123":   "A123456", // por placa, case-insensitive
		"juan":   "A123456", // por cliente
		"toyota": "A123456", // por etiqueta de marca
		"cr-v":   "B654321", // por etiqueta de modelo, no por value "crv"
	}
	for search, wantPlate := range cases {
		out, err := uc.List(dto.VehicleListRequest{Search: search})
		require.NoError(t, err)
		require.Len(t, out, 1, "búsqueda %q", search)
		assert.Equal(t, wantPlate, out[0].Plate, "búsqueda %q", search)
	}

	// Sin búsqueda: ambos.
	out, err := uc.List(dto.VehicleListRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestList_EstadoInvalido(t *testing.T) {
	uc := registry.NewVehicleUseCase(newFakeVehicleRepo())
	_, err := uc.List(dto.VehicleListRequest{Status: "desguazado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
