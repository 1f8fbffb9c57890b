package usuario

import (
	"github.com/kgsoft/estoque/internal/usuario/repository"
	"github.com/kgsoft/estoque/internal/usuario/service"
	"go.uber.org/fx"
)

var Module = fx.Module("usuario.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
