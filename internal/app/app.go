package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/IBM/sarama"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/porchman/notification-api/docs" // Import Swagger docs
	"github.com/porchman/notification-api/internal/clients/line"
	"github.com/porchman/notification-api/internal/config"
	"github.com/porchman/notification-api/internal/controllers/callback"
	"github.com/porchman/notification-api/internal/controllers/trackingnumber"
	"github.com/porchman/notification-api/internal/dispatch"
	"github.com/porchman/notification-api/internal/kafka"
	"github.com/porchman/notification-api/internal/services/blobstore"
	"github.com/porchman/notification-api/internal/services/eventcache"
	"github.com/porchman/notification-api/internal/services/notifier"
	"github.com/porchman/notification-api/internal/services/storage"
	"github.com/porchman/notification-api/internal/services/trackingrepo"
	"github.com/rs/zerolog"
)

// CreateServers builds the storage backends selected in settings and returns the API app.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	repo, err := newTrackingRepository(ctx, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracking repository: %w", err)
	}

	blobs, err := newBlobDownloader(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob downloader: %w", err)
	}

	regNotifier, err := newNotifier(ctx, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create registration notifier: %w", err)
	}

	gateway := storage.NewGateway(repo, blobs, regNotifier, settings.StorageTimeout)

	lineClient, err := line.New(settings.LineChannelSecret, settings.LineChannelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE client: %w", err)
	}

	return CreateFiberApp(logger, gateway, lineClient, settings), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, gateway *storage.Gateway, platform callback.Platform, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Porchman Notification API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Porchman Notification API!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	app.Static("/images", settings.ImageDir)

	dispatcher := dispatch.NewDispatcher(gateway, dispatch.Config{
		StatusBlobName:  settings.StatusBlobName,
		StatusImagePath: filepath.Join(settings.ImageDir, filepath.Base(settings.StatusBlobName)),
		StatusImage: dispatch.ImageRef{
			OriginalURL: settings.MainImage,
			PreviewURL:  settings.PreviewImage,
		},
	})
	callbackController := callback.NewCallbackController(platform, dispatcher, eventcache.New(settings.EventDedupTTL))
	trackingNumberController := trackingnumber.NewTrackingNumberController(gateway)

	logger.Info().Msg("Registering routes...")

	app.Post("/callback", callbackController.HandleCallback)

	app.Post("/trackingnumber/registration", trackingNumberController.Register)
	app.Get("/trackingnumber/get", trackingNumberController.Get)

	return app
}

func newTrackingRepository(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (storage.TrackingRepository, error) {
	switch settings.TableBackend {
	case config.TableBackendPostgres:
		store := db.NewDbConnectionFromSettings(ctx, &settings.DB, true)
		store.WaitForDB(logger)
		return trackingrepo.NewPostgresRepository(store.DBS().Writer.DB), nil

	case config.TableBackendMemory:
		logger.Warn().Msg("Using in-memory tracking table, registrations are lost on restart")
		return trackingrepo.NewMemoryRepository(), nil

	default:
		repo, err := trackingrepo.NewTableRepository(settings.AzureStorageName, settings.AzureStorageKey, settings.TableName)
		if err != nil {
			return nil, err
		}
		ensureCtx, cancel := context.WithTimeout(ctx, settings.StorageTimeout)
		defer cancel()
		if err := repo.EnsureTable(ensureCtx); err != nil {
			return nil, err
		}
		return repo, nil
	}
}

func newBlobDownloader(settings *config.Settings) (blobstore.Downloader, error) {
	if settings.BlobBackend == config.BlobBackendS3 {
		return blobstore.NewMinioDownloader(blobstore.MinioConfig{
			Endpoint:  settings.S3Endpoint,
			AccessKey: settings.S3AccessKey,
			SecretKey: settings.S3SecretKey,
			Bucket:    settings.S3Bucket,
			Secure:    settings.S3Secure,
		})
	}
	return blobstore.NewAzureDownloader(settings.AzureConnectionStr, settings.ContainerName)
}

// newNotifier returns nil when no registration target is configured. Targets holding
// connections are closed once ctx is done.
func newNotifier(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (storage.Notifier, error) {
	var targets notifier.Multi
	if settings.NotifyWebhookURL != "" {
		targets = append(targets, notifier.NewWebhookSender(settings.NotifyWebhookURL, nil))
	}
	if settings.KafkaBrokers != "" {
		clusterConfig := sarama.NewConfig()
		clusterConfig.Version = sarama.V2_8_1_0

		publisher, err := kafka.NewPublisher(&kafka.Config{
			ClusterConfig:   clusterConfig,
			BrokerAddresses: strings.Split(settings.KafkaBrokers, ","),
			Topic:           settings.KafkaTopic,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create registration publisher: %w", err)
		}
		closeOnDone(ctx, publisher, "registration publisher", logger)
		targets = append(targets, publisher)
	}
	if len(targets) == 0 {
		return nil, nil
	}
	return targets, nil
}

// closeOnDone closes c after ctx is done and logs the outcome.
func closeOnDone(ctx context.Context, c io.Closer, name string, logger zerolog.Logger) {
	context.AfterFunc(ctx, func() {
		if err := c.Close(); err != nil {
			logger.Error().Err(err).Str("component", name).Msg("Failed to close")
			return
		}
		logger.Info().Str("component", name).Msg("Closed")
	})
}
