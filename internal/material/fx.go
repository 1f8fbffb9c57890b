package material

import (
	"github.com/kgsoft/estoque/internal/material/repository"
	"github.com/kgsoft/estoque/internal/material/service"
	"go.uber.org/fx"
)

var Module = fx.Module("material.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
