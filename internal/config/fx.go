package config

import (
	"github.com/kgsoft/estoque/pkg/db"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewTenancyConfigHolder),
	fx.Provide(func(cfg Config) db.Config { return cfg.DBConfig() }),
)
