package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-recipe-api/internal/config"
	"github.com/franciscosanchezn/gin-recipe-api/internal/database"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/franciscosanchezn/gin-recipe-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	email := flag.String("email", "", "Email of the staff user (required)")
	password := flag.String("password", "", "Password, falls back to SUPERUSER_PASSWORD")
	withClient := flag.Bool("client", false, "Also register an API client for the user")
	clientName := flag.String("client-name", "Admin CLI", "Name of the API client")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
	log.SetFormatter(&log.JSONFormatter{})

	if *password == "" {
		*password = os.Getenv("SUPERUSER_PASSWORD")
	}
	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	db, err := database.Open(conf.Database())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	ctx := context.Background()
	users := services.NewUserService(db)

	user, err := users.CreateSuperuser(ctx, *email, *password)
	if errors.Is(err, models.ErrConflictError) {
		user, err = users.GetUserByEmail(ctx, *email)
		if err == nil {
			fmt.Printf("Found existing user: %s (ID: %d, staff: %t)\n", user.Email, user.ID, user.IsStaff)
		}
	} else if err == nil {
		fmt.Printf("✓ Superuser created: %s (ID: %d)\n", user.Email, user.ID)
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to create superuser")
	}

	if !*withClient {
		return
	}

	client, secret, err := services.NewClientService(db).CreateClient(ctx, user.ID, services.ClientInput{
		Name:   *clientName,
		Domain: "http://localhost",
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create client")
	}

	fmt.Printf("Client ID: %s\n", client.ID)
	fmt.Printf("Client Secret: %s\n", secret)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://%s:%d/api/v1/oauth/token \\\n", conf.Host, conf.Port)
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", client.ID)
	fmt.Printf("  -d 'client_secret=%s'\n", secret)
}
