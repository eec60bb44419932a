package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

type fakeTableRepo struct {
	tables []*entity.Table
}

func (r *fakeTableRepo) Create(table *entity.Table) error {
	for _, t := range r.tables {
		if t.Number == table.Number {
			return domain.ErrDuplicate
		}
	}
	r.tables = append(r.tables, table)
	return nil
}

func (r *fakeTableRepo) List() ([]*entity.Table, error) {
	return r.tables, nil
}

func TestTableCreate_NumeroPositivo(t *testing.T) {
	uc := usecase.NewTableUseCase(&fakeTableRepo{})

	out, err := uc.Create(dto.CreateTableRequest{Number: 5, QRCode: "https://qr/5"})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Number)
	assert.NotEmpty(t, out.ID)
}

func TestTableCreate_NumeroInvalido_Rechazado(t *testing.T) {
	uc := usecase.NewTableUseCase(&fakeTableRepo{})

	_, err := uc.Create(dto.CreateTableRequest{Number: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTableCreate_NumeroDuplicado_Rechazado(t *testing.T) {
	uc := usecase.NewTableUseCase(&fakeTableRepo{})

	_, err := uc.Create(dto.CreateTableRequest{Number: 5})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateTableRequest{Number: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTableList_DevuelveTodas(t *testing.T) {
	uc := usecase.NewTableUseCase(&fakeTableRepo{})
	for n := 1; n <= 3; n++ {
		_, err := uc.Create(dto.CreateTableRequest{Number: n})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
