package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/rasidhq/rasid/internal/config"
	"github.com/rasidhq/rasid/internal/logger"
	pdfprovider "github.com/rasidhq/rasid/internal/providers/pdf"
	"github.com/rasidhq/rasid/internal/receipt"
	"github.com/rasidhq/rasid/internal/server"
	"github.com/rasidhq/rasid/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		pdfprovider.Module,
		receipt.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
