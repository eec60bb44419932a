package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos: creación por el cliente, listado por
// estado y cambio de estado por el admin.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea un pedido para el usuario autenticado. El cliente del body se
// ignora: siempre queda el clienteID recibido de los claims. El total se
// calcula en el servidor como Σ precio × cantidad; un pedido sin líneas
// queda con total 0.
func (uc *OrderUseCase) Create(clienteID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	items := make([]entity.OrderItem, 0, len(in.Productos))
	for _, p := range in.Productos {
		items = append(items, entity.OrderItem{
			ProductID: p.ProductID,
			Nombre:    p.Nombre,
			Precio:    p.Precio,
			Cantidad:  p.Cantidad,
		})
	}
	order := &entity.Order{
		ID:        uuid.New().String(),
		Cliente:   clienteID,
		Mesa:      in.Mesa,
		Productos: items,
		Total:     ComputeTotal(items),
		Estado:    entity.EstadoEnEspera,
		Fecha:     time.Now(),
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListByEstado devuelve los pedidos en ese estado, cada uno con su usuario.
func (uc *OrderUseCase) ListByEstado(estado string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByEstado(estado)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// UpdateEstado cambia el estado de un pedido. El estado debe ser uno de los
// permitidos (ErrInvalidInput); un id inexistente devuelve (nil, nil).
func (uc *OrderUseCase) UpdateEstado(id, estado string) (*dto.OrderResponse, error) {
	if estado != entity.EstadoEnEspera && estado != entity.EstadoRealizado {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.UpdateEstado(id, estado)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido, o (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// ComputeTotal suma precio × cantidad sobre las líneas del pedido.
// Con cero líneas devuelve decimal.Zero.
func ComputeTotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Precio.Mul(decimal.NewFromInt(it.Cantidad)))
	}
	return total
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Productos))
	for _, it := range o.Productos {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Nombre:    it.Nombre,
			Precio:    it.Precio,
			Cantidad:  it.Cantidad,
		})
	}
	resp := &dto.OrderResponse{
		ID:        o.ID,
		Cliente:   o.Cliente,
		Mesa:      o.Mesa,
		Productos: items,
		Total:     o.Total,
		Estado:    o.Estado,
		Fecha:     o.Fecha,
	}
	if o.Usuario != nil {
		resp.Usuario = &dto.OrderUserResponse{
			ID:    o.Usuario.ID,
			Name:  o.Usuario.Name,
			Email: o.Usuario.Email,
		}
	}
	return resp
}
