package usecase_test

import (
	"errors"
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
// Fake en memoria del ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListAvailable() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.Available {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		list = append(list, p)
	}
	return list, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) (int64, error) {
	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}

func createProduct(t *testing.T, uc *usecase.ProductUseCase, name string, available *bool) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:        name,
		Description: "rico",
		Price:       decimal.RequireFromString("9.90"),
		Image:       "https://img/" + name + ".png",
		Available:   available,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_DisponiblePorDefecto(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out := createProduct(t, uc, "Arepa", nil)
	assert.True(t, out.Available,
		"sin el campo available el producto nace disponible")
	assert.NotEmpty(t, out.ID)
}

func TestProductCreate_PrecioNegativo_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Arepa", Description: "rica", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_NombreDuplicado_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	createProduct(t, uc, "Arepa", nil)
	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Arepa", Description: "otra", Price: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// failingNameRepo simula un almacén caído en la consulta por nombre.
type failingNameRepo struct {
	*fakeProductRepo
}

func (r *failingNameRepo) GetByName(string) (*entity.Product, error) {
	return nil, errors.New("db caída")
}

func TestProductCreate_FalloAlConsultarNombre_PropagaError(t *testing.T) {
	// Un error del almacén no es "nombre libre": la creación no debe continuar.
	repo := &failingNameRepo{newFakeProductRepo()}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Arepa", Description: "rica", Price: decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, repo.products, "no debe insertarse ningún producto")
}

func TestProductMenu_FiltraNoDisponibles(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	disponible := true
	agotado := false
	createProduct(t, uc, "Arepa", &disponible)
	createProduct(t, uc, "Sancocho", &agotado)

	menu, err := uc.Menu()
	require.NoError(t, err)
	todos, err := uc.List()
	require.NoError(t, err)

	assert.Len(t, menu, 1, "el menú público solo trae productos disponibles")
	assert.Equal(t, "Arepa", menu[0].Name)
	assert.Len(t, todos, 2, "la vista admin trae todo el catálogo")
}

func TestProductUpdate_AplicaSoloCamposPresentes(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := createProduct(t, uc, "Arepa", nil)

	nuevoPrecio := decimal.RequireFromString("12.00")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &nuevoPrecio})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Arepa", out.Name, "el nombre no cambia si no viene")
	assert.True(t, out.Price.Equal(nuevoPrecio))
}

func TestProductUpdate_PrecioNegativo_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := createProduct(t, uc, "Arepa", nil)

	negativo := decimal.NewFromInt(-5)
	_, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_IDInexistente_NilNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_IDInexistente_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
