package main

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/kgsoft/estoque/internal/config"
	"github.com/kgsoft/estoque/internal/migration"
	"github.com/kgsoft/estoque/internal/observability"
	"github.com/kgsoft/estoque/internal/server"
	"github.com/kgsoft/estoque/internal/tenancy"
	"github.com/kgsoft/estoque/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		tenancy.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	nodeID := int64(1)
	if raw := os.Getenv("SNOWFLAKE_NODE_ID"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		nodeID = parsed
	}
	return snowflake.NewNode(nodeID)
}
