package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// TableUseCase alta y listado de mesas del restaurante.
type TableUseCase struct {
	repo repository.TableRepository
}

// NewTableUseCase construye el caso de uso.
func NewTableUseCase(repo repository.TableRepository) *TableUseCase {
	return &TableUseCase{repo: repo}
}

// Create registra una mesa. El número de mesa es único (ErrDuplicate).
func (uc *TableUseCase) Create(in dto.CreateTableRequest) (*dto.TableResponse, error) {
	if in.Number <= 0 {
		return nil, domain.ErrInvalidInput
	}
	table := &entity.Table{
		ID:     uuid.New().String(),
		Number: in.Number,
		QRCode: in.QRCode,
	}
	if err := uc.repo.Create(table); err != nil {
		return nil, err
	}
	return toTableResponse(table), nil
}

// List lista todas las mesas.
func (uc *TableUseCase) List() ([]dto.TableResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TableResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTableResponse(t))
	}
	return items, nil
}

func toTableResponse(t *entity.Table) *dto.TableResponse {
	return &dto.TableResponse{ID: t.ID, Number: t.Number, QRCode: t.QRCode}
}
