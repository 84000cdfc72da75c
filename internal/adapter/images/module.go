package images

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/digishoplabs/digishop/internal/config"
)

// Module exposes the image store implementation to the fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (Store, error) {
	store, err := NewS3Store(p.Ctx, Config{
		Bucket:   p.Config.S3Bucket,
		Region:   p.Config.S3Region,
		Key:      p.Config.S3Key,
		Secret:   p.Config.S3Secret,
		Endpoint: p.Config.S3Endpoint,
		BaseURL:  p.Config.S3BaseURL,
	}, p.Logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}
