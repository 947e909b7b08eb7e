//go:build !protogen

package main

import (
	"context"
	"log/slog"

	"github.com/mehedi-hasan-dev/rentora/libs/db"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/storage"
)

func startGrpcServer(_ context.Context, _ *slog.Logger, _ *db.Pool, _ *storage.Repository) error {
	return nil
}
