package categoria

import (
	"github.com/kgsoft/estoque/internal/categoria/repository"
	"github.com/kgsoft/estoque/internal/categoria/service"
	"go.uber.org/fx"
)

var Module = fx.Module("categoria.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
