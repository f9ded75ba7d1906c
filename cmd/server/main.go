package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/pangrm/blogdee/backend/internal/router"
	"github.com/pangrm/blogdee/backend/pkg/config"
	"github.com/pangrm/blogdee/backend/pkg/firebase"
	"github.com/pangrm/blogdee/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure the database connection is closed when main exits

	// Initialize Firebase when credentials are configured; the local JWT
	// login path works without it.
	var firebaseAuthClient *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuthClient = firebaseApp.AuthClient
	} else {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, Firebase login disabled.")
	}

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, firebaseAuthClient)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
