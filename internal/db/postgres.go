package awards

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

// PostgresDB - связи (qsos) и выданные уровни (user_awards)
type PostgresDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresDB(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresDB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresDB{pool, logger}, nil
}

// EnsureSchema создает таблицы, если их нет
func (p *PostgresDB) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (p *PostgresDB) Close() {
	p.pool.Close()
}

func (p *PostgresDB) logSQL(service string, sql string, args []any, err error) {
	p.logger.Error("SQL error",
		zap.Error(err),
		zap.String("service", service),
		zap.String("query", sql),
		zap.Any("args", args),
	)
}
