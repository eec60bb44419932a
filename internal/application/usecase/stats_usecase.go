package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// topLimit cuántos productos y clientes entran en el ranking.
const topLimit = 10

// StatsUseCase agregados de solo lectura sobre los pedidos (panel admin).
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Get devuelve el total de pedidos, la suma de totales y los top-10 de
// productos (por cantidad acumulada) y clientes (por cantidad de pedidos).
func (uc *StatsUseCase) Get(ctx context.Context) (*dto.StatsResponse, error) {
	count, sales, err := uc.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	topProducts, err := uc.repo.TopProducts(ctx, topLimit)
	if err != nil {
		return nil, err
	}
	topClients, err := uc.repo.TopClients(ctx, topLimit)
	if err != nil {
		return nil, err
	}

	products := make([]dto.TopProduct, 0, len(topProducts))
	for _, p := range topProducts {
		products = append(products, dto.TopProduct{Name: p.Name, TotalQuantity: p.TotalQuantity})
	}
	clients := make([]dto.TopClient, 0, len(topClients))
	for _, c := range topClients {
		clients = append(clients, dto.TopClient{ID: c.ID, Name: c.Name, TotalOrders: c.TotalOrders})
	}

	return &dto.StatsResponse{
		TotalOrders: count,
		TotalSales:  sales,
		TopProducts: products,
		TopClients:  clients,
	}, nil
}
