// Package database holds the single pooled handle every repository runs its
// SQL through, and decodes the store's constraint errors.
package database

import (
	"context"

	"gorm.io/gorm"
)

// Executor is the slice of the gateway repositories depend on.
type Executor interface {
	// Query runs a statement that returns rows, scans them into dest and
	// reports how many rows were scanned.
	Query(ctx context.Context, dest any, query string, args ...any) (int64, error)
	// Exec runs a statement and reports the affected row count.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
}

type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) Query(ctx context.Context, dest any, query string, args ...any) (int64, error) {
	res := g.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res := g.db.WithContext(ctx).Exec(query, args...)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
