package command

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aioseoassistant/SMSApp/internal/api"
	messageHandler "github.com/aioseoassistant/SMSApp/internal/api/handler/message"
	webhookHandler "github.com/aioseoassistant/SMSApp/internal/api/handler/webhook"
	"github.com/aioseoassistant/SMSApp/internal/api/middleware"
	"github.com/aioseoassistant/SMSApp/internal/cache"
	"github.com/aioseoassistant/SMSApp/internal/config"
	"github.com/aioseoassistant/SMSApp/internal/constant"
	"github.com/aioseoassistant/SMSApp/internal/feed"
	"github.com/aioseoassistant/SMSApp/internal/infra"
	"github.com/aioseoassistant/SMSApp/internal/provider"
	"github.com/aioseoassistant/SMSApp/internal/repository"
	smsService "github.com/aioseoassistant/SMSApp/internal/service/sms"
	webhookService "github.com/aioseoassistant/SMSApp/internal/service/webhook"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run the SMS relay server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	db, err := infra.NewPostgresClient(ctx, cfg.Database.Postgres)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to postgresql"))
		return
	}

	// create repositories
	messageRepository := repository.NewMessageRepository(db.GetDb())

	// listing cache is optional; without redis reads always hit the store
	var listingCache cache.ListingCache = cache.Nop{}
	if cfg.Database.Redis.Host != "" {
		redisClient, err := infra.NewRedisClient(ctx, cfg.Database.Redis, cmd.Logger)
		if err != nil {
			cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
			return
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close redis"))
			}
		}()
		listingCache = cache.NewRedisCache(redisClient, cmd.Logger)
	}

	// lifecycle feed is optional; without kafka events are dropped silently
	var publisher feed.Publisher = feed.Nop{}
	if cfg.Kafka.Host != "" {
		kafkaPublisher := feed.NewKafkaPublisher(infra.NewKafkaWriter(cfg.Kafka), cmd.Logger)
		kafkaPublisher.Start(constant.FeedWorkerCount)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		cmd.Logger.WithContext(ctx).Infof("started %d lifecycle feed workers", constant.FeedWorkerCount)
	}

	carrierProvider := cmd.buildProvider(cfg.Carrier)

	// create services
	smsServiceInstance := smsService.NewSmsService(
		messageRepository,
		carrierProvider,
		cfg.Carrier,
		listingCache,
		publisher,
		cmd.Logger,
	)
	webhookServiceInstance := webhookService.NewWebhookService(
		messageRepository,
		listingCache,
		publisher,
		cmd.Logger,
	)

	// create handlers
	msgHandler := messageHandler.New(smsServiceInstance)
	whHandler := webhookHandler.New(webhookServiceInstance, cmd.Logger)

	verifier, err := middleware.NewSignatureVerifier(cfg.Webhook.PublicKey, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : invalid webhook public key"))
		return
	}

	server := api.New(cfg.AppEnv)
	server.SetupAPIRoutes(msgHandler, whHandler, cfg.HTTP.AllowOrigin, verifier)

	// run the server
	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.Fatal(err)
	}
}

func (cmd Server) buildProvider(carrier config.Carrier) provider.CarrierProvider {
	if carrier.Provider == "stub" || carrier.APIKey == "" {
		cmd.Logger.Warn("carrier credentials not configured, using stub provider")
		return provider.NewStubProvider(cmd.Logger)
	}
	return provider.NewTelnyxProvider(carrier.BaseURL, carrier.APIKey)
}
