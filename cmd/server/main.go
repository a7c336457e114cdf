package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopfront_back_end/internal/config"
	"shopfront_back_end/internal/database"
	"shopfront_back_end/internal/handlers"
	"shopfront_back_end/internal/routes"
	"shopfront_back_end/internal/services"
	"shopfront_back_end/internal/state"
)

func main() {
	config.Load()

	store, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Échec ouverture du store: %v", err)
	}

	// Seed idempotent : catalogue fixe + compte admin au premier démarrage
	if err := database.Seed(store); err != nil {
		log.Fatalf("❌ Échec seed du store: %v", err)
	}
	log.Println("✅ Store initialisé")

	api := services.New(store)
	container := state.NewContainer(store, api)

	// Restaure session + panier persistés et charge le catalogue.
	// Un JSON corrompu dans le store est fatal — pas de reset silencieux.
	if err := container.Initialize(); err != nil {
		log.Fatalf("❌ Échec hydratation de l'état: %v", err)
	}
	log.Println("✅ État applicatif hydraté")

	handlers.Init(container)

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Shopfront lancé sur le port", port)
	r.Run(":" + port)
}
