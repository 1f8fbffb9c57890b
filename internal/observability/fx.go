package observability

import (
	"github.com/kgsoft/estoque/internal/config"
	"github.com/kgsoft/estoque/internal/observability/logger"
	"github.com/kgsoft/estoque/internal/observability/metrics"
	"go.uber.org/fx"
	gormlogger "gorm.io/gorm/logger"
)

var Module = fx.Module("observability",
	fx.Provide(
		provideLoggerConfig,
		logger.New,
		provideGormLogger,
		metrics.New,
	),
)

func provideLoggerConfig(cfg config.Config) logger.Config {
	return logger.Config{
		ServiceName:   cfg.AppName,
		Environment:   cfg.Environment,
		Version:       cfg.AppVersion,
		Level:         cfg.LogLevel,
		Format:        cfg.LogFormat,
		IncludeCaller: true,
	}
}

func provideGormLogger(cfg config.Config) gormlogger.Interface {
	gormCfg := logger.DefaultGormLoggerConfig()
	if cfg.Debug() {
		gormCfg.Level = gormlogger.Info
	}
	return logger.NewGormLogger(gormCfg)
}
