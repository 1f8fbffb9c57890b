package db

import (
	"context"
	"database/sql"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("db",
	fx.Provide(New),
	fx.Provide(func(conn *gorm.DB) (*sql.DB, error) {
		return conn.DB()
	}),
	fx.Invoke(func(lc fx.Lifecycle, sqlDB *sql.DB) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				_ = ctx
				return sqlDB.Close()
			},
		})
	}),
)
