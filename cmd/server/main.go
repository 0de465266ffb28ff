package main

import (
	"context"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/club59/pongking/internal/ai"
	"github.com/club59/pongking/internal/app/club"
	"github.com/club59/pongking/internal/app/server"
	"github.com/club59/pongking/internal/aws/storage"
	"github.com/club59/pongking/internal/domains/interfaces"
	"github.com/club59/pongking/internal/notify"
	"github.com/club59/pongking/internal/repositories"
	"github.com/club59/pongking/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	cfg := server.NewConfig()

	var store interfaces.Store
	switch cfg.StorageBackend {
	case "memory":
		store = repositories.NewMemoryStore()
		logging.Info("using in-memory storage backend")
	default:
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx)
		if err != nil {
			logging.Fatal("unable to load SDK config", zap.Error(err))
		}
		store = storage.NewClient(dynamodb.NewFromConfig(awsCfg))
	}

	opts := []club.Option{}
	var notifier *notify.RedisNotifier
	if cfg.RedisAddr != "" {
		notifier = notify.NewRedisNotifier(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisChannel)
		if err := notifier.Ping(ctx); err != nil {
			logging.Fatal("redis unreachable", zap.Error(err))
		}
		opts = append(opts, club.WithNotifier(notifier))
	}

	service := club.NewService(store, ai.NewClient(), opts...)

	logging.Fatal("server exited", zap.Error(
		server.NewServer(cfg, service, notifier).Start(ctx),
	))
}
