package main

import (
	"log"

	"github.com/nature-connect/market-backend/cmd/server"
	"github.com/nature-connect/market-backend/internal/config"
	"github.com/nature-connect/market-backend/internal/features/order"
	"github.com/nature-connect/market-backend/internal/features/product"
	"github.com/nature-connect/market-backend/internal/storage"
)

var (
	srvAddr     = config.Env.Port
	adminAPIKey = config.Env.AdminAPIKey
	dataDir     = config.Env.DataDir
	publicDir   = config.Env.PublicDir
)

func main() {
	log.SetFlags(log.Ldate | log.Llongfile)

	store, err := storage.New(dataDir)
	if err != nil {
		log.Fatal(err)
	}

	if err := store.Ensure(product.Collection, order.Collection); err != nil {
		log.Fatal(err)
	}

	srv := server.NewServer(&server.ServerConfig{
		Addr:        srvAddr,
		Store:       store,
		AdminAPIKey: adminAPIKey,
		PublicDir:   publicDir,
	})
	srv.Run()
}
