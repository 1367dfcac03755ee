package notifier

import (
	"time"

	"github.com/DIMO-Network/cloudevent"
	"github.com/google/uuid"
	"github.com/porchman/notification-api/internal/services/trackingrepo"
)

const (
	// EventTypeTrackingRegistered is the CloudEvent type emitted on every registration.
	EventTypeTrackingRegistered = "porchman.tracking.registered"
	eventSource                 = "porchman-notification-api"
	eventDataVersion            = "tracking/v1.0"
)

// TrackingRegistered is the payload of a registration event.
type TrackingRegistered struct {
	// Hash is the partition key of the stored record.
	Hash string `json:"hash"`
	// Number is the registered tracking number.
	Number string `json:"number"`
	// UserID is the LINE user ID, or the placeholder row key for kiosk registrations.
	UserID string `json:"userId"`
	// TrackID is the kiosk supplied identifier, if any.
	TrackID string `json:"trackId,omitempty"`
}

// NewRegisteredEvent wraps a stored record in a CloudEvent.
func NewRegisteredEvent(rec trackingrepo.Record) *cloudevent.CloudEvent[TrackingRegistered] {
	return &cloudevent.CloudEvent[TrackingRegistered]{
		CloudEventHeader: cloudevent.CloudEventHeader{
			ID:              uuid.New().String(),
			Source:          eventSource,
			Subject:         rec.PartitionKey,
			Time:            time.Now().UTC(),
			DataContentType: "application/json",
			DataVersion:     eventDataVersion,
			Type:            EventTypeTrackingRegistered,
			SpecVersion:     "1.0",
		},
		Data: TrackingRegistered{
			Hash:    rec.PartitionKey,
			Number:  rec.Number,
			UserID:  rec.RowKey,
			TrackID: rec.TrackID,
		},
	}
}
