package movimento

import (
	"github.com/kgsoft/estoque/internal/movimento/repository"
	"github.com/kgsoft/estoque/internal/movimento/service"
	"go.uber.org/fx"
)

var Module = fx.Module("movimento.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
