// Command seed inserts API-key users for api-key deployments. Registration
// only creates password users; key-credentialed users are provisioned out of
// band with this tool.
//
//	seed -username ops@example.com -privilege 2
//
// The generated key is printed once and stored in the users collection.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/accessd/accessd/internal/core/domain"
	"github.com/accessd/accessd/internal/infrastructure/config"
	mongodb "github.com/accessd/accessd/internal/infrastructure/db/mongo"
	"github.com/accessd/accessd/pkg/logger"
)

func main() {
	username := flag.String("username", "", "username for the new api-key user")
	privilege := flag.Int("privilege", int(domain.PrivilegeUser), "privilege level (0=guest, 1=user, 2=admin)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if *username == "" {
		log.Fatal().Msg("-username is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index setup failed")
	}

	now := time.Now().UTC()
	user, err := repo.Create(ctx, &domain.User{
		Username:  *username,
		APIKey:    uuid.NewString(),
		Privilege: int(domain.PrivilegeFromInt(*privilege)),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create user failed")
	}

	fmt.Printf("created user %d (%s) privilege=%s\napi key: %s\n",
		user.ID, user.Username, user.PrivilegeLevel(), user.APIKey)
}
