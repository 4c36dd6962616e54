// Command token mints an admin access token signed with the configured JWT secret.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/yigit/eschool/internal/app/models"
	"github.com/yigit/eschool/internal/bootstrap"
	"github.com/yigit/eschool/internal/config"
	"github.com/yigit/eschool/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", bootstrap.ConfigPath(), "path to the configuration file")
	subject := flag.String("subject", "admin", "token subject")
	role := flag.String("role", string(models.RoleAdmin), "role claim")
	flag.Parse()

	// stdout carries only the token
	logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true, Output: os.Stderr})

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}
	if cfg.Auth.Secret == "" {
		logger.Error().Msg("auth.secret (JWT_SECRET) must be set to mint tokens")
		os.Exit(1)
	}

	token, expiresAt, err := bootstrap.NewJWTService(cfg).GenerateToken(*subject, *role)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		os.Exit(1)
	}

	logger.Info().Str("subject", *subject).Str("role", *role).Time("expiresAt", expiresAt.UTC().Truncate(time.Second)).Msg("Token generated")
	fmt.Println(token)
}
