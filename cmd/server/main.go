package main

import (
	"github.com/lobbynetz/backend/internal/server"
	"github.com/lobbynetz/backend/internal/util"
	"github.com/lobbynetz/backend/pkg/logger"
	"github.com/lobbynetz/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		Format: util.GetEnv("LOG_FORMAT"),
	})
	logger.Init(consoleLogger)

	server.Init()
}
