package main

import (
	"github.com/SarfarazSingh/HighfieldVilla/config"
	"github.com/SarfarazSingh/HighfieldVilla/di"
	"github.com/SarfarazSingh/HighfieldVilla/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
