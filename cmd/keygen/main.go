package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Vprince099/restaurant-scheduler/pkg/auth"
	"github.com/Vprince099/restaurant-scheduler/pkg/config"
)

func main() {
	config.LoadDotEnv()

	if len(os.Args) < 2 {
		fmt.Println("Usage: keygen <restaurant-id>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if cfg.APIMasterSecret == "" {
		fmt.Println("Error: API_MASTER_SECRET not found in environment or .env")
		os.Exit(1)
	}

	userID := os.Args[1]
	if strings.Contains(userID, ".") {
		fmt.Println("Error: id must not contain '.'")
		os.Exit(1)
	}
	svc := auth.NewService(cfg.JWTSecret, cfg.APIMasterSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	fmt.Printf("Generated Key for %s:\n%s\n", userID, svc.GenerateHMACKey(userID))
}
