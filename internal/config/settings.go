package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/DIMO-Network/shared/pkg/db"
)

const (
	TableBackendAzure    = "azure"
	TableBackendPostgres = "postgres"
	TableBackendMemory   = "memory"

	BlobBackendAzure = "azure"
	BlobBackendS3    = "s3"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	LineChannelSecret      string `env:"LINE_CHANNEL_SECRET"`
	LineChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN"`
	MainImage              string `env:"MAIN_IMAGE"`
	PreviewImage           string `env:"PREVIEW_IMAGE"`

	TableBackend       string `env:"TABLE_BACKEND"`
	TableName          string `env:"TABLE_NAME"`
	AzureStorageName   string `env:"AZURE_STRAGE_NAME"`
	AzureStorageKey    string `env:"AZURE_STRAGE_KEY"`
	BlobBackend        string `env:"BLOB_BACKEND"`
	ContainerName      string `env:"CONTAINER_NAME"`
	AzureConnectionStr string `env:"ASC_CONNECTION_STRING"`
	S3Endpoint         string `env:"S3_ENDPOINT"`
	S3AccessKey        string `env:"S3_ACCESS_KEY"`
	S3SecretKey        string `env:"S3_SECRET_KEY"`
	S3Bucket           string `env:"S3_BUCKET"`
	S3Secure           bool   `env:"S3_SECURE"`

	StatusBlobName string        `env:"STATUS_BLOB_NAME"`
	ImageDir       string        `env:"IMAGE_DIR"`
	StorageTimeout time.Duration `env:"STORAGE_TIMEOUT"`
	EventDedupTTL  time.Duration `env:"EVENT_DEDUP_TTL"`

	NotifyWebhookURL string `env:"NOTIFY_WEBHOOK_URL"`
	KafkaBrokers     string `env:"KAFKA_BROKERS"`
	KafkaTopic       string `env:"KAFKA_TOPIC"`

	DB db.Settings `envPrefix:"DB_"`
}

// SetDefaults fills in every optional value left empty.
func (s *Settings) SetDefaults() {
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.MonPort == 0 {
		s.MonPort = 8888
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "porchman-notification-api"
	}
	if s.PreviewImage == "" {
		s.PreviewImage = s.MainImage
	}
	if s.TableBackend == "" {
		s.TableBackend = TableBackendAzure
	}
	if s.TableName == "" {
		s.TableName = "tracknumber"
	}
	if s.BlobBackend == "" {
		s.BlobBackend = BlobBackendAzure
	}
	if s.StatusBlobName == "" {
		s.StatusBlobName = "latest.jpg"
	}
	if s.ImageDir == "" {
		s.ImageDir = "./images"
	}
	if s.StorageTimeout <= 0 {
		s.StorageTimeout = 10 * time.Second
	}
	if s.EventDedupTTL <= 0 {
		s.EventDedupTTL = 10 * time.Minute
	}
}

// Validate reports every missing setting required by the selected backends.
func (s *Settings) Validate() error {
	var errs []error
	required := func(name, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	required("LINE_CHANNEL_SECRET", s.LineChannelSecret)
	required("LINE_CHANNEL_ACCESS_TOKEN", s.LineChannelAccessToken)
	required("MAIN_IMAGE", s.MainImage)

	switch s.TableBackend {
	case TableBackendAzure:
		required("AZURE_STRAGE_NAME", s.AzureStorageName)
		required("AZURE_STRAGE_KEY", s.AzureStorageKey)
	case TableBackendPostgres:
		required("DB_HOST", s.DB.Host)
		required("DB_NAME", s.DB.Name)
	case TableBackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown TABLE_BACKEND %q", s.TableBackend))
	}

	switch s.BlobBackend {
	case BlobBackendAzure:
		required("ASC_CONNECTION_STRING", s.AzureConnectionStr)
		required("CONTAINER_NAME", s.ContainerName)
	case BlobBackendS3:
		required("S3_ENDPOINT", s.S3Endpoint)
		required("S3_BUCKET", s.S3Bucket)
	default:
		errs = append(errs, fmt.Errorf("unknown BLOB_BACKEND %q", s.BlobBackend))
	}

	if s.KafkaBrokers != "" {
		required("KAFKA_TOPIC", s.KafkaTopic)
	}

	return errors.Join(errs...)
}
