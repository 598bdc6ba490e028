package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	webAdapter "offer-agent/internal/adapters/web"
	"offer-agent/internal/ai"
	"offer-agent/internal/app"
	"offer-agent/internal/core"
	"offer-agent/internal/db"
	"offer-agent/internal/mail"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	userService := core.NewUserService(pool)
	offerService := core.NewOfferService(pool)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set")
	}
	var interpreter ai.Strategy = ai.NewExtractor(apiKey)
	if os.Getenv("EXTRACTOR_FALLBACK") == "1" {
		interpreter = ai.NewChain(interpreter, ai.NewFallback())
	}

	mailer := mail.NewMailer(mail.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     envInt("SMTP_PORT", 587),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	})

	assetDir := os.Getenv("ASSET_DIR")
	if assetDir == "" {
		assetDir = "assets"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	svc := app.NewAppService(pool, userService, offerService, interpreter, mailer, assetDir)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// envInt reads an integer environment variable with a default.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
