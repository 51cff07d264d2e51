package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lunarlife/spacebio/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv, err := server.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
