package main

import (
	"os"

	"github.com/NibirNd/Safebite-App/config"
	"github.com/NibirNd/Safebite-App/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter(config.DB)

	addr := os.Getenv("SAFEBITE_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	r.Run(addr)
}
