package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/taller-api/internal/application/billing"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/domain"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeVehicleRepo struct {
	vehicles map[int64]*entity.Vehicle
}

func newFakeVehicleRepo(vs ...*entity.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{vehicles: make(map[int64]*entity.Vehicle)}
	for _, v := range vs {
		r.vehicles[v.ID] = v
	}
	return r
}

func (r *fakeVehicleRepo) Create(v *entity.Vehicle) error { r.vehicles[v.ID] = v; return nil }
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

// fakeInvoiceRepo simula la tabla de facturas con índice único sobre el
// número. duplicateHits fuerza colisiones de número en las primeras N
// inserciones para ejercitar el reintento.
type fakeInvoiceRepo struct {
	nextID        int64
	invoices      map[int64]*entity.Invoice
	items         map[int64][]entity.LineItem
	numbers       map[string]bool
	duplicateHits int
	createCalls   int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[int64]*entity.Invoice),
		items:    make(map[int64][]entity.LineItem),
		numbers:  make(map[string]bool),
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.createCalls++
	if r.duplicateHits > 0 {
		r.duplicateHits--
		return domain.ErrDuplicate
	}
	if r.numbers[inv.InvoiceNumber] {
		return domain.ErrDuplicate
	}
	r.nextID++
	inv.ID = r.nextID
	cp := *inv
	r.invoices[inv.ID] = &cp
	r.numbers[inv.InvoiceNumber] = true
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(invoiceID int64, position int, item entity.LineItem) error {
	r.items[invoiceID] = append(r.items[invoiceID], item)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetItems(invoiceID int64) ([]entity.LineItem, error) {
	return r.items[invoiceID], nil
}

func (r *fakeInvoiceRepo) ListByVehicle(vehicleID int64) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.VehicleID == vehicleID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id int64, status string, paidAt *time.Time, updatedAt time.Time) error {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	inv.PaidAt = paidAt
	inv.UpdatedAt = updatedAt
	return nil
}

func (r *fakeInvoiceRepo) Delete(id int64) error {
	delete(r.invoices, id)
	delete(r.items, id)
	return nil
}

// fakeTxRunner pasa el mismo repo fake a fn; sin transacción real.
type fakeTxRunner struct {
	repo *fakeInvoiceRepo
}

func (t *fakeTxRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(t.repo)
}

func testVehicle() *entity.Vehicle {
	return &entity.Vehicle{
		ID:     7,
		Plate:  "A123456",
		Brand:  "toyota",
		Model:  "corolla",
		Year:   2020,
		Color:  "white",
		Status: entity.VehicleStatusActive,
	}
}

func newUseCase(invRepo *fakeInvoiceRepo, vehRepo *fakeVehicleRepo) *billing.InvoiceUseCase {
	return billing.NewInvoiceUseCase(&fakeTxRunner{repo: invRepo}, invRepo, vehRepo, "18")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_FacturaCompleta(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	uc := newUseCase(invRepo, newFakeVehicleRepo(testVehicle()))

	resp, err := uc.Create(context.Background(), 7, dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemDraft{
			{Description: "Part A", Quantity: "2", UnitPrice: "100"},
		},
		Notes: "cliente espera",
	})
	require.NoError(t, err)

	assert.Equal(t, "A123456", resp.VehiclePlate)
	assert.Equal(t, entity.InvoiceStatusPending, resp.Status)
	assert.Regexp(t, `^FAC-\d{6}-\d{4}$`, resp.InvoiceNumber)
	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("200")))
	assert.True(t, resp.Tax.Equal(decimal.RequireFromString("36")), "tasa por defecto 18%%")
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("236")))
	assert.Equal(t, "RD$236.00", resp.TotalFormatted)

	// Cabecera y líneas persistidas
	require.Len(t, invRepo.invoices, 1)
	assert.Len(t, invRepo.items[resp.ID], 1)
}

func TestCreate_VehiculoInexistente(t *testing.T) {
	uc := newUseCase(newFakeInvoiceRepo(), newFakeVehicleRepo())

	_, err := uc.Create(context.Background(), 99, dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemDraft{{Description: "X", Quantity: "1", UnitPrice: "1"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SinLineasValidas(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	uc := newUseCase(invRepo, newFakeVehicleRepo(testVehicle()))

	_, err := uc.Create(context.Background(), 7, dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemDraft{
			{Description: "", Quantity: "1", UnitPrice: "10"},
			{Description: "Algo", Quantity: "0", UnitPrice: "10"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)
	assert.Empty(t, invRepo.invoices, "no debe quedar factura parcial")
}

func TestCreate_TasaExplicitaGanaALaDefault(t *testing.T) {
	uc := newUseCase(newFakeInvoiceRepo(), newFakeVehicleRepo(testVehicle()))

	resp, err := uc.Create(context.Background(), 7, dto.CreateInvoiceRequest{
		Items:   []dto.InvoiceItemDraft{{Description: "Pieza", Quantity: "1", UnitPrice: "100"}},
		TaxRate: "0",
	})
	require.NoError(t, err)
	assert.True(t, resp.Tax.IsZero(), "tasa 0 explícita no debe caer al 18%% por defecto")
}

func TestCreate_ReintentaAnteNumeroDuplicado(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	invRepo.duplicateHits = 2 // las dos primeras inserciones chocan
	uc := newUseCase(invRepo, newFakeVehicleRepo(testVehicle()))

	resp, err := uc.Create(context.Background(), 7, dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemDraft{{Description: "Pieza", Quantity: "1", UnitPrice: "50"}},
	})
	require.NoError(t, err, "dos colisiones seguidas deben resolverse reintentando")
	assert.Equal(t, 3, invRepo.createCalls)
	assert.NotEmpty(t, resp.InvoiceNumber)
}

func TestCreate_AgotaReintentos(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	invRepo.duplicateHits = 10 // más colisiones que reintentos
	uc := newUseCase(invRepo, newFakeVehicleRepo(testVehicle()))

	_, err := uc.Create(context.Background(), 7, dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemDraft{{Description: "Pieza", Quantity: "1", UnitPrice: "50"}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus / VehicleSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_PagarYDespagar(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	uc := newUseCase(invRepo, newFakeVehicleRepo(testVehicle()))

	created, err := uc.Create(context.Background(), 7, dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemDraft{{Description: "Pieza", Quantity: "1", UnitPrice: "100"}},
	})
	require.NoError(t, err)

	paid, err := uc.UpdateStatus(context.Background(), created.ID, dto.UpdateInvoiceStatusRequest{
		Status: entity.InvoiceStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	// Totales intactos tras el cambio de estado
	assert.True(t, paid.Total.Equal(created.Total))

	pending, err := uc.UpdateStatus(context.Background(), created.ID, dto.UpdateInvoiceStatusRequest{
		Status: entity.InvoiceStatusPending,
	})
	require.NoError(t, err)
	assert.Nil(t, pending.PaidAt, "volver a pending limpia PaidAt")
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	uc := newUseCase(invRepo, newFakeVehicleRepo(testVehicle()))

	created, err := uc.Create(context.Background(), 7, dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemDraft{{Description: "Pieza", Quantity: "1", UnitPrice: "100"}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), created.ID, dto.UpdateInvoiceStatusRequest{
		Status: "archivada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVehicleSummary_ExcluyeCanceladas(t *testing.T) {
	invRepo := newFakeInvoiceRepo()
	uc := newUseCase(invRepo, newFakeVehicleRepo(testVehicle()))

	mk := func(price string) *dto.InvoiceResponse {
		resp, err := uc.Create(context.Background(), 7, dto.CreateInvoiceRequest{
			Items:   []dto.InvoiceItemDraft{{Description: "Trabajo", Quantity: "1", UnitPrice: price}},
			TaxRate: "0",
		})
		require.NoError(t, err)
		return resp
	}

	mk("100") // queda pending
	paid := mk("50")
	cancelled := mk("999")

	_, err := uc.UpdateStatus(context.Background(), paid.ID, dto.UpdateInvoiceStatusRequest{Status: entity.InvoiceStatusPaid})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), cancelled.ID, dto.UpdateInvoiceStatusRequest{Status: entity.InvoiceStatusCancelled})
	require.NoError(t, err)

	summary, err := uc.VehicleSummary(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.InvoiceCount)
	assert.True(t, summary.PendingTotal.Equal(decimal.RequireFromString("100")))
	assert.True(t, summary.PaidTotal.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, "RD$100.00", summary.PendingTotalFormatted)
}
