package fornecedor

import (
	"github.com/kgsoft/estoque/internal/fornecedor/repository"
	"github.com/kgsoft/estoque/internal/fornecedor/service"
	"go.uber.org/fx"
)

var Module = fx.Module("fornecedor.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
