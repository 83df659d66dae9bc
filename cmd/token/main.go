// Command token issues a bearer token for calling the API as a provider user.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"contribhub/internal/auth"
	"contribhub/internal/config"
	"contribhub/internal/model"
)

func main() {
	username := flag.String("user", "", "provider username")
	provider := flag.String("provider", model.ProviderGithub, "provider of the user")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *username == "" || !model.IsProvider(*provider) {
		flag.Usage()
		log.Fatal("a username and a known provider are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	token, err := auth.GenerateToken(cfg.JWTSecret, *username, *provider, *ttl)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}
