package grupoacesso

import (
	"github.com/kgsoft/estoque/internal/grupoacesso/repository"
	"github.com/kgsoft/estoque/internal/grupoacesso/service"
	"go.uber.org/fx"
)

var Module = fx.Module("grupoacesso.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
