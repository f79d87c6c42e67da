package main

import (
	"github.com/SundayYogurt/product_service/config"
	"github.com/SundayYogurt/product_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
