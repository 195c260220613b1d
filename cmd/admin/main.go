package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/eduhub/eduhub/internal/admin"
	"github.com/eduhub/eduhub/internal/server"
	"github.com/eduhub/eduhub/internal/server/auth"
	"github.com/eduhub/eduhub/internal/server/config"
	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
	"github.com/eduhub/eduhub/internal/server/services"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	connect := func(ctx context.Context) (admin.Signer, io.Closer, error) {
		m := repomanager.NewPostgresRepositoryManager()
		db, err := server.OpenDB(ctx, cfg.DatabaseDSN, m)
		if err != nil {
			return nil, nil, err
		}
		return services.NewAuthService(db, m, auth.NewHasher(), cfg), db, nil
	}

	if err := admin.Run(ctx, os.Args[1:], os.Stdout, connect); err != nil {
		log.Fatal(err)
	}
}
