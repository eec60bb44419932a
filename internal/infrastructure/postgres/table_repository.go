package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo implementación del puerto TableRepository sobre PostgreSQL.
type TableRepo struct {
	q Querier
}

// NewTableRepository construye el adaptador de persistencia para mesas.
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

// Create persiste una mesa. El número tiene constraint único.
func (r *TableRepo) Create(table *entity.Table) error {
	query := `INSERT INTO tables (id, number, qr_code) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, table.ID, table.Number, table.QRCode)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// List lista todas las mesas ordenadas por número.
func (r *TableRepo) List() ([]*entity.Table, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, number, qr_code FROM tables ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Table
	for rows.Next() {
		var t entity.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.QRCode); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
