package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/database/postgres"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/domain"
	"github.com/jocianoperin/PromoPredictor-sub000/pkg/utils"
)

const (
	promotionsTable   = "promotions p"
	promotionsColumns = "p.id, p.product_code, p.start_date, p.end_date, p.unit_price, p.unit_cost, p.table_price, p.created_at, p.updated_at"
)

// PromotionRepository persiste os períodos promocionais canônicos.
// SaveOrMerge é a única operação de escrita do motor nessa tabela;
// linhas só saem dela quando absorvidas por uma consolidação.
type PromotionRepository interface {
	SaveOrMerge(ctx context.Context, interval *domain.PromotionInterval) (*domain.Promotion, error)
	ListPromotions() ([]*domain.Promotion, error)
	ListClosedBefore(productCode string, before time.Time) ([]*domain.Promotion, error)
}

type promotionRepository struct {
	conn *postgres.Connection
}

func NewPromotionRepository(conn *postgres.Connection) PromotionRepository {
	return &promotionRepository{
		conn: conn,
	}
}

// SaveOrMerge reconcilia um intervalo fundido contra as promoções já
// persistidas do produto, dentro de uma única transação:
//
//  1. Bloqueia (FOR UPDATE) todas as linhas do mesmo produto e preço
//     cujo período sobrepõe o intervalo de entrada.
//  2. Se houver correspondências, alarga a mais antiga para cobrir o
//     intervalo de entrada e todas as demais, que são absorvidas e
//     removidas. Um intervalo que faz ponte entre duas promoções
//     vizinhas colapsa, portanto, em uma única linha.
//  3. Caso contrário insere uma nova linha; a constraint de unicidade em
//     (product_code, start_date, end_date) tem fallback de upsert com a
//     mesma lógica de alargamento.
//
// Dois workers processando intervalos do mesmo produto são serializados
// pelo lock do passo 1; produtos diferentes seguem em paralelo.
func (r *promotionRepository) SaveOrMerge(ctx context.Context, interval *domain.PromotionInterval) (*domain.Promotion, error) {
	if err := interval.Validate(); err != nil {
		return nil, err
	}

	var promotion *domain.Promotion

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		overlapping, err := r.findOverlappingForUpdate(ctx, tx, interval)
		if err != nil {
			return err
		}

		if len(overlapping) > 0 {
			promotion, err = r.consolidate(ctx, tx, overlapping, interval)
			return err
		}

		promotion, err = r.insert(ctx, tx, interval)
		return err
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return promotion, nil
}

// findOverlappingForUpdate busca, com lock de linha, todas as promoções
// do mesmo produto e preço cujo período sobrepõe o intervalo de entrada,
// em ordem cronológica. A chave de correspondência segue a origem dos
// dados: custo fica de fora porque a detecção já exige custo constante
// na janela.
func (r *promotionRepository) findOverlappingForUpdate(ctx context.Context, tx *sql.Tx, interval *domain.PromotionInterval) ([]*domain.Promotion, error) {
	query, args, err := squirrel.
		Select(promotionsColumns).
		From(promotionsTable).
		Where(squirrel.Eq{
			"p.product_code": interval.ProductCode,
			"p.unit_price":   interval.UnitPrice,
			"p.table_price":  interval.TablePrice,
		}).
		Where(squirrel.LtOrEq{"p.start_date": interval.EndDate.Format(time.DateOnly)}).
		Where(squirrel.GtOrEq{"p.end_date": interval.StartDate.Format(time.DateOnly)}).
		OrderBy("p.start_date ASC").
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		promotion := &domain.Promotion{}
		err := rows.Scan(
			&promotion.ID,
			&promotion.ProductCode,
			&promotion.StartDate,
			&promotion.EndDate,
			&promotion.UnitPrice,
			&promotion.UnitCost,
			&promotion.TablePrice,
			&promotion.CreatedAt,
			&promotion.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear promoções sobrepostas: %w", err)
		}
		promotions = append(promotions, promotion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return promotions, nil
}

// consolidate alarga a promoção sobreposta mais antiga para cobrir o
// intervalo de entrada e todas as demais linhas bloqueadas, removidas na
// mesma transação. Ao final nunca restam dois períodos sobrepostos para
// o mesmo produto e preço, mesmo quando o intervalo de entrada faz ponte
// entre linhas gravadas em execuções anteriores.
func (r *promotionRepository) consolidate(ctx context.Context, tx *sql.Tx, overlapping []*domain.Promotion, interval *domain.PromotionInterval) (*domain.Promotion, error) {
	survivor := overlapping[0]

	startDate := interval.StartDate
	endDate := interval.EndDate
	absorbed := make([]string, 0, len(overlapping)-1)
	for i, existing := range overlapping {
		if existing.StartDate.Before(startDate) {
			startDate = existing.StartDate
		}
		if existing.EndDate.After(endDate) {
			endDate = existing.EndDate
		}
		if i > 0 {
			absorbed = append(absorbed, existing.ID)
		}
	}

	if len(absorbed) > 0 {
		query, args, err := squirrel.
			Delete("promotions").
			Where(squirrel.Eq{"id": absorbed}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("erro ao absorver promoções sobrepostas: %w", err)
		}
	}

	query, args, err := squirrel.
		Update("promotions").
		Set("start_date", startDate.Format(time.DateOnly)).
		Set("end_date", endDate.Format(time.DateOnly)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": survivor.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao alargar promoção %s: %w", survivor.ID, err)
	}

	widened := *survivor
	widened.StartDate = startDate
	widened.EndDate = endDate
	return &widened, nil
}

func (r *promotionRepository) insert(ctx context.Context, tx *sql.Tx, interval *domain.PromotionInterval) (*domain.Promotion, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID de promoção: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("promotions").
		Columns("id", "product_code", "start_date", "end_date", "unit_price", "unit_cost", "table_price").
		Values(
			id,
			interval.ProductCode,
			interval.StartDate.Format(time.DateOnly),
			interval.EndDate.Format(time.DateOnly),
			interval.UnitPrice,
			interval.UnitCost,
			interval.TablePrice,
		).
		Suffix(`
			ON CONFLICT (product_code, start_date, end_date) DO UPDATE SET
				start_date = LEAST(promotions.start_date, EXCLUDED.start_date),
				end_date = GREATEST(promotions.end_date, EXCLUDED.end_date),
				updated_at = NOW()
			RETURNING id, product_code, start_date, end_date, unit_price, unit_cost, table_price, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := tx.QueryRowContext(ctx, query, args...)
	promotion, err := scanPromotionRow(row)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir promoção: %w", err)
	}

	return promotion, nil
}

// ListPromotions retorna todas as promoções persistidas, para o fan-out
// da fase de indicadores.
func (r *promotionRepository) ListPromotions() ([]*domain.Promotion, error) {
	query, args, err := squirrel.
		Select(promotionsColumns).
		From(promotionsTable).
		OrderBy("p.product_code ASC", "p.start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPromotions(query, args...)
}

// ListClosedBefore retorna as promoções do produto encerradas antes da
// data informada, em ordem cronológica.
func (r *promotionRepository) ListClosedBefore(productCode string, before time.Time) ([]*domain.Promotion, error) {
	query, args, err := squirrel.
		Select(promotionsColumns).
		From(promotionsTable).
		Where(squirrel.Eq{"p.product_code": productCode}).
		Where(squirrel.Lt{"p.end_date": before.Format(time.DateOnly)}).
		OrderBy("p.start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPromotions(query, args...)
}

func (r *promotionRepository) queryPromotions(query string, args ...interface{}) ([]*domain.Promotion, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		promotion := &domain.Promotion{}
		err := rows.Scan(
			&promotion.ID,
			&promotion.ProductCode,
			&promotion.StartDate,
			&promotion.EndDate,
			&promotion.UnitPrice,
			&promotion.UnitCost,
			&promotion.TablePrice,
			&promotion.CreatedAt,
			&promotion.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear promoções: %w", err)
		}
		promotions = append(promotions, promotion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return promotions, nil
}

func scanPromotionRow(row *sql.Row) (*domain.Promotion, error) {
	promotion := &domain.Promotion{}
	err := row.Scan(
		&promotion.ID,
		&promotion.ProductCode,
		&promotion.StartDate,
		&promotion.EndDate,
		&promotion.UnitPrice,
		&promotion.UnitCost,
		&promotion.TablePrice,
		&promotion.CreatedAt,
		&promotion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return promotion, nil
}
