package main

import (
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/config"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/di"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
