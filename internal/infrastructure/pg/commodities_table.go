package pg

import (
	"context"
	"fmt"

	"commodities-etl/internal/application"
	"commodities-etl/internal/domain"
	"commodities-etl/internal/infrastructure/logx"

	"github.com/guregu/null/v6"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	CommoditiesTableName = "commodities"
	commoditiesDateIndex = "ix_commodities_date"
)

var commoditiesColumns = []string{"date", "close", "symbol"}

// CommoditiesTable owns <schema>.commodities. Every Replace drops and
// recreates it, so its shape is defined here rather than by migrations.
type CommoditiesTable struct {
	db  *DB
	log *zap.Logger
}

var _ application.QuoteTable = (*CommoditiesTable)(nil)

func NewCommoditiesTable(db *DB) *CommoditiesTable { return &CommoditiesTable{db: db} }

// WithLogger sets the base logger; nil means logx.L().
func (r *CommoditiesTable) WithLogger(l *zap.Logger) *CommoditiesTable {
	r.log = l
	return r
}

func (r *CommoditiesTable) Replace(ctx context.Context, schema string, rows []domain.Quote) error {
	table := pgx.Identifier{schema, CommoditiesTableName}
	name := table.Sanitize()
	stmts := []string{
		`DROP TABLE IF EXISTS ` + name,
		`CREATE TABLE ` + name + ` ("date" TIMESTAMPTZ, "close" DOUBLE PRECISION, "symbol" TEXT)`,
		`CREATE INDEX ` + pgx.Identifier{commoditiesDateIndex}.Sanitize() + ` ON ` + name + ` ("date")`,
	}
	log := logx.WithFields(ctx, r.log).With(
		zap.String("repo", "commodities"),
		zap.String("operation", "Replace"),
		zap.String("table", name),
		zap.Int("rows", len(rows)),
	)
	log.Info("sql.exec_start")
	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("exec %q: %w", stmt, err)
			}
		}
		n, err := tx.CopyFrom(ctx, table, commoditiesColumns, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			q := rows[i]
			return []any{q.Date, q.Close.Ptr(), q.Symbol}, nil
		}))
		if err != nil {
			return fmt.Errorf("copy rows: %w", err)
		}
		if int(n) != len(rows) {
			return fmt.Errorf("copy rows: wrote %d of %d", n, len(rows))
		}
		return nil
	})
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return err
	}
	log.Info("sql.exec_success")
	return nil
}

// ReadAll returns the table ordered by date, then symbol.
func (r *CommoditiesTable) ReadAll(ctx context.Context, schema string) ([]domain.Quote, error) {
	name := pgx.Identifier{schema, CommoditiesTableName}.Sanitize()
	q := `SELECT "date", "close", "symbol" FROM ` + name + ` ORDER BY "date", "symbol"`
	log := logx.WithFields(ctx, r.log).With(
		zap.String("repo", "commodities"),
		zap.String("operation", "ReadAll"),
		zap.String("sql", q),
	)
	log.Info("sql.query_start")
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	var out []domain.Quote
	for rows.Next() {
		var (
			quote domain.Quote
			px    *float64
		)
		if err := rows.Scan(&quote.Date, &px, &quote.Symbol); err != nil {
			log.Error("sql.query_failed", zap.Error(err))
			return nil, err
		}
		quote.Close = null.FloatFromPtr(px)
		out = append(out, quote)
	}
	if err := rows.Err(); err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	log.Info("sql.query_success", zap.Int("rows", len(out)))
	return out, nil
}
