package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/database/postgres"
)

const (
	inventoryAuditTable = "inventory_audit ia"
)

// InventoryAuditRepository consulta a auditoria de estoque (feed externo,
// somente leitura para o motor).
type InventoryAuditRepository interface {
	AverageStockBefore(productCode string, before time.Time) (float64, error)
	LastStockAtOrBefore(productCode string, at time.Time) (float64, error)
}

type inventoryAuditRepository struct {
	conn *postgres.Connection
}

func NewInventoryAuditRepository(conn *postgres.Connection) InventoryAuditRepository {
	return &inventoryAuditRepository{
		conn: conn,
	}
}

// AverageStockBefore retorna o nível médio de estoque estritamente antes
// da data informada. Zero quando não há registros.
func (r *inventoryAuditRepository) AverageStockBefore(productCode string, before time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(ia.stock_level), 0)").
		From(inventoryAuditTable).
		Where(squirrel.Eq{"ia.product_code": productCode}).
		Where(squirrel.Lt{"ia.recorded_at": before.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var average float64
	if err := r.conn.QueryRow(query, args...).Scan(&average); err != nil {
		return 0, fmt.Errorf("erro ao escanear média de estoque: %w", err)
	}

	return average, nil
}

// LastStockAtOrBefore retorna o último nível de estoque conhecido até a
// data informada, inclusive. Zero quando não há registros.
func (r *inventoryAuditRepository) LastStockAtOrBefore(productCode string, at time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("ia.stock_level").
		From(inventoryAuditTable).
		Where(squirrel.Eq{"ia.product_code": productCode}).
		Where(squirrel.LtOrEq{"ia.recorded_at": at.Format(time.DateOnly)}).
		OrderBy("ia.recorded_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var level float64
	if err := r.conn.QueryRow(query, args...).Scan(&level); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao escanear nível de estoque: %w", err)
	}

	return level, nil
}
