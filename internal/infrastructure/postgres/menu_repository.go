package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación de solo lectura del catálogo sobre PostgreSQL.
type MenuRepo struct {
	pool *pgxpool.Pool
}

// NewMenuRepository construye el adaptador del menú.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool}
}

// ListItems lista el menú completo con orden estable por nombre.
func (r *MenuRepo) ListItems() ([]*entity.MenuItem, error) {
	return r.list(`SELECT itemName, type, price FROM Menu ORDER BY itemName`)
}

// ListTypes lista los tipos de ítem distintos.
func (r *MenuRepo) ListTypes() ([]string, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT DISTINCT type FROM Menu ORDER BY type`)
	if err != nil {
		return nil, fmt.Errorf("list menu types: %w", err)
	}
	defer rows.Close()
	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan menu type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// ItemsOfType lista los ítems de un tipo, orden estable por nombre.
func (r *MenuRepo) ItemsOfType(itemType string) ([]*entity.MenuItem, error) {
	return r.list(`SELECT itemName, type, price FROM Menu WHERE type = $1 ORDER BY itemName`, itemType)
}

// PriceOf devuelve el precio unitario de un ítem; (Zero, false, nil) si no existe.
func (r *MenuRepo) PriceOf(name string) (decimal.Decimal, bool, error) {
	var price decimal.Decimal
	err := r.pool.QueryRow(context.Background(),
		`SELECT price FROM Menu WHERE itemName = $1`, name).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("get menu price: %w", err)
	}
	return price, true, nil
}

func (r *MenuRepo) list(query string, args ...any) ([]*entity.MenuItem, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.Name, &m.Type, &m.Price); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
