package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del OrderRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) ListByEstado(estado string) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range r.orders {
		if o.Estado == estado {
			list = append(list, o)
		}
	}
	return list, nil
}

func (r *fakeOrderRepo) UpdateEstado(id, estado string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	o.Estado = estado
	return o, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeTotal
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotal_SumaPrecioPorCantidad(t *testing.T) {
	items := []entity.OrderItem{
		{Nombre: "Arepa", Precio: decimal.NewFromInt(5), Cantidad: 2},
		{Nombre: "Jugo", Precio: decimal.NewFromInt(3), Cantidad: 1},
	}
	total := usecase.ComputeTotal(items)
	assert.True(t, total.Equal(decimal.NewFromInt(13)),
		"5×2 + 3×1 = 13, se obtuvo %s", total)
}

func TestComputeTotal_SinLineas_EsCero(t *testing.T) {
	total := usecase.ComputeTotal(nil)
	assert.True(t, total.IsZero())
}

func TestComputeTotal_PreciosConDecimales(t *testing.T) {
	items := []entity.OrderItem{
		{Nombre: "Café", Precio: decimal.RequireFromString("2.50"), Cantidad: 3},
	}
	total := usecase.ComputeTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("7.50")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OrderUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_EstampaClienteYEstadoInicial(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.Create("cliente-123", dto.CreateOrderRequest{
		Mesa: 4,
		Productos: []dto.OrderItemRequest{
			{ProductID: "p1", Nombre: "Arepa", Precio: decimal.NewFromInt(5), Cantidad: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "cliente-123", out.Cliente,
		"el cliente siempre viene de los claims, nunca del body")
	assert.Equal(t, entity.EstadoEnEspera, out.Estado)
	assert.Equal(t, 4, out.Mesa)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(10)))
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.Fecha.IsZero())
}

func TestOrderCreate_SinLineas_TotalCero(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.Create("cliente-123", dto.CreateOrderRequest{Mesa: 1})
	require.NoError(t, err)
	assert.True(t, out.Total.IsZero())
}

func TestOrderUpdateEstado_EstadoDesconocido_Rechazado(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	_, err := uc.UpdateEstado("cualquiera", "cancelado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateEstado_PedidoInexistente_NilNil(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.UpdateEstado("no-existe", entity.EstadoRealizado)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestOrderUpdateEstado_CambiaEstado(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	created, err := uc.Create("cliente-123", dto.CreateOrderRequest{Mesa: 2})
	require.NoError(t, err)

	out, err := uc.UpdateEstado(created.ID, entity.EstadoRealizado)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.EstadoRealizado, out.Estado)
}

func TestOrderListByEstado_FiltraPorEstado(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	a, _ := uc.Create("c1", dto.CreateOrderRequest{Mesa: 1})
	_, _ = uc.Create("c2", dto.CreateOrderRequest{Mesa: 2})
	_, err := uc.UpdateEstado(a.ID, entity.EstadoRealizado)
	require.NoError(t, err)

	enEspera, err := uc.ListByEstado(entity.EstadoEnEspera)
	require.NoError(t, err)
	realizados, err := uc.ListByEstado(entity.EstadoRealizado)
	require.NoError(t, err)

	assert.Len(t, enEspera, 1)
	assert.Len(t, realizados, 1)
}
