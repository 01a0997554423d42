package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string
	Port            string
	TokenSecret     []byte
	StripeSecretKey string
	Features        Features
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

// feature flags default to enabled; set the env var to "false" to turn
// a route group off.
func featureEnabled(k string) bool {
	return os.Getenv(k) != "false"
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		user := must(os.Getenv("DB_USER"), "DB_USER")
		pass := must(os.Getenv("DB_PASS"), "DB_PASS")
		uri = fmt.Sprintf("mongodb+srv://%s:%s@cluster0.skpwg.mongodb.net/?retryWrites=true&w=majority", user, pass)
	}

	cfg := &Config{
		MongoURI:        uri,
		Port:            getenv("PORT", "5000"),
		TokenSecret:     []byte(must(os.Getenv("ACCESS_TOKEN_SECRET"), "ACCESS_TOKEN_SECRET")),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Features: Features{
			AdminRoutes:   featureEnabled("FEATURE_ADMIN_ROUTES"),
			PaymentRoutes: featureEnabled("FEATURE_PAYMENT_ROUTES"),
			ProfileRoutes: featureEnabled("FEATURE_PROFILE_ROUTES"),
		},
	}
	if cfg.Features.PaymentRoutes {
		cfg.StripeSecretKey = must(cfg.StripeSecretKey, "STRIPE_SECRET_KEY")
	}
	return cfg
}
