// Package storage is the gateway between request handlers and the tracking table and
// blob container. Every call runs under an explicit timeout.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/porchman/notification-api/internal/metrics"
	"github.com/porchman/notification-api/internal/services/blobstore"
	"github.com/porchman/notification-api/internal/services/trackingrepo"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds storage calls when no timeout is configured.
const DefaultTimeout = 10 * time.Second

const (
	registrationSourceChat   = "chat"
	registrationSourceDirect = "direct"
)

type TrackingRepository interface {
	Upsert(ctx context.Context, rec trackingrepo.Record) error
	FindByNumber(ctx context.Context, number string) ([]trackingrepo.Record, error)
}

type Notifier interface {
	Notify(ctx context.Context, rec trackingrepo.Record) error
}

// Gateway shapes requests against the tracking repository and blob downloader.
type Gateway struct {
	repo     TrackingRepository
	blobs    blobstore.Downloader
	notifier Notifier
	timeout  time.Duration
}

// NewGateway creates a Gateway. notifier may be nil; a non-positive timeout uses DefaultTimeout.
func NewGateway(repo TrackingRepository, blobs blobstore.Downloader, notifier Notifier, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		repo:     repo,
		blobs:    blobs,
		notifier: notifier,
		timeout:  timeout,
	}
}

// UpsertTracking stores number for the chat sender userID, replacing an earlier
// identical registration. An empty userID is rejected with a validation error so a
// chat message can never overwrite a direct registration.
func (g *Gateway) UpsertTracking(ctx context.Context, userID, number string) (trackingrepo.Record, error) {
	rec := trackingrepo.NewRecord(userID, number)
	if err := rec.Validate(); err != nil {
		return trackingrepo.Record{}, fmt.Errorf("failed to upsert tracking number: %w", err)
	}
	if err := g.upsert(ctx, rec, registrationSourceChat); err != nil {
		return trackingrepo.Record{}, err
	}
	return rec, nil
}

// RegisterDirect stores a number registered through the HTTP API.
func (g *Gateway) RegisterDirect(ctx context.Context, number, trackID string) (trackingrepo.Record, error) {
	rec := trackingrepo.NewDirectRecord(number, trackID)
	if err := g.upsert(ctx, rec, registrationSourceDirect); err != nil {
		return trackingrepo.Record{}, err
	}
	return rec, nil
}

// QueryTracking reports whether exactly one record holds number. When more than one
// record matches it returns false together with trackingrepo.ErrAmbiguousNumber.
func (g *Gateway) QueryTracking(ctx context.Context, number string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	found, err := g.repo.FindByNumber(ctx, number)
	metrics.StorageOperations.WithLabelValues("query", metrics.Result(err)).Inc()
	if err != nil {
		return false, fmt.Errorf("failed to query tracking number: %w", err)
	}
	switch len(found) {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d records for %q", trackingrepo.ErrAmbiguousNumber, len(found), number)
	}
}

// DownloadBlob copies blobName from the container into destinationPath.
func (g *Gateway) DownloadBlob(ctx context.Context, blobName, destinationPath string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := blobstore.DownloadToPath(ctx, g.blobs, blobName, destinationPath)
	metrics.StorageOperations.WithLabelValues("download", metrics.Result(err)).Inc()
	return err
}

func (g *Gateway) upsert(ctx context.Context, rec trackingrepo.Record, source string) error {
	upsertCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := g.repo.Upsert(upsertCtx, rec)
	metrics.StorageOperations.WithLabelValues("upsert", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("failed to upsert tracking number: %w", err)
	}
	metrics.Registrations.WithLabelValues(source).Inc()

	if g.notifier != nil {
		notifyCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		if err := g.notifier.Notify(notifyCtx, rec); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("hash", rec.PartitionKey).Msg("Failed to notify registration")
		}
	}
	return nil
}
