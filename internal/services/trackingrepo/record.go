package trackingrepo

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// DefaultTableName is the table tracking numbers are stored in.
	DefaultTableName = "tracknumber"
	// PlaceholderRowKey is the row key of registrations from the kiosk client.
	PlaceholderRowKey = "pepper"
)

// Record is a single registered tracking number.
type Record struct {
	// PartitionKey is the SHA-256 hex digest identifying the record.
	PartitionKey string
	// RowKey is the chat sender key or PlaceholderRowKey for direct registrations.
	RowKey string
	// Number is the tracking number.
	Number string
	// TrackID is an opaque identifier supplied by the kiosk client.
	TrackID string
	// Timestamp is the last write time as reported by the backend.
	Timestamp time.Time
}

// PartitionKey returns the hex encoded SHA-256 digest of userID followed by number.
func PartitionKey(userID, number string) string {
	sum := sha256.Sum256([]byte(userID + number))
	return hex.EncodeToString(sum[:])
}

// NewRecord builds the record for a tracking number sent from chat. sourceID is
// the sender key and must not be empty: an empty key would collide with the
// record NewDirectRecord builds for the same number, so Validate rejects it.
func NewRecord(sourceID, number string) Record {
	return Record{
		PartitionKey: PartitionKey(sourceID, number),
		RowKey:       sourceID,
		Number:       number,
	}
}

// NewDirectRecord builds the record for a number registered through the HTTP API.
// The partition key is derived from the number alone.
func NewDirectRecord(number, trackID string) Record {
	return Record{
		PartitionKey: PartitionKey("", number),
		RowKey:       PlaceholderRowKey,
		Number:       number,
		TrackID:      trackID,
	}
}

// Validate checks that the record can be written.
func (r Record) Validate() error {
	if r.PartitionKey == "" {
		return fmt.Errorf("%w partitionKey is required", ValidationError)
	}
	if r.RowKey == "" {
		return fmt.Errorf("%w rowKey is required", ValidationError)
	}
	if r.Number == "" {
		return fmt.Errorf("%w number is required", ValidationError)
	}
	return nil
}
