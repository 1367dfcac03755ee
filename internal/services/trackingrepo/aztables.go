package trackingrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
)

const tableAlreadyExists = "TableAlreadyExists"

// writeEntity is the JSON shape written to Azure Table Storage.
type writeEntity struct {
	PartitionKey string `json:"PartitionKey"`
	RowKey       string `json:"RowKey"`
	Number       string `json:"number"`
	TrackID      string `json:"trackId,omitempty"`
}

// readEntity is the JSON shape returned when listing entities.
type readEntity struct {
	PartitionKey string    `json:"PartitionKey"`
	RowKey       string    `json:"RowKey"`
	Number       string    `json:"number"`
	TrackID      string    `json:"trackId"`
	Timestamp    time.Time `json:"Timestamp"`
}

// TableRepository stores records in an Azure Table Storage table.
type TableRepository struct {
	client *aztables.Client
}

// NewTableRepository connects to the table with a storage account name and key.
func NewTableRepository(accountName, accountKey, tableName string) (*TableRepository, error) {
	cred, err := aztables.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create table credential: %w", err)
	}
	serviceURL := fmt.Sprintf("https://%s.table.core.windows.net/", accountName)
	svc, err := aztables.NewServiceClientWithSharedKey(serviceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create table service client: %w", err)
	}
	return &TableRepository{client: svc.NewClient(tableName)}, nil
}

// NewTableRepositoryFromConnectionString connects to the table with a storage connection string.
func NewTableRepositoryFromConnectionString(connectionString, tableName string) (*TableRepository, error) {
	svc, err := aztables.NewServiceClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create table service client: %w", err)
	}
	return &TableRepository{client: svc.NewClient(tableName)}, nil
}

// EnsureTable creates the table if it does not exist yet.
func (r *TableRepository) EnsureTable(ctx context.Context) error {
	_, err := r.client.CreateTable(ctx, nil)
	if err == nil {
		return nil
	}
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) && (respErr.ErrorCode == tableAlreadyExists || respErr.StatusCode == http.StatusConflict) {
		return nil
	}
	return fmt.Errorf("failed to create table: %w", err)
}

// Upsert inserts the entity or replaces the one with the same keys.
func (r *TableRepository) Upsert(ctx context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(writeEntity{
		PartitionKey: rec.PartitionKey,
		RowKey:       rec.RowKey,
		Number:       rec.Number,
		TrackID:      rec.TrackID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}
	_, err = r.client.UpsertEntity(ctx, body, &aztables.UpsertEntityOptions{
		UpdateMode: aztables.UpdateModeReplace,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert entity: %w", err)
	}
	return nil
}

// FindByNumber returns every entity whose number property equals the argument.
func (r *TableRepository) FindByNumber(ctx context.Context, number string) ([]Record, error) {
	filter := numberFilter(number)
	pager := r.client.NewListEntitiesPager(&aztables.ListEntitiesOptions{
		Filter: &filter,
	})

	var out []Record
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list entities: %w", err)
		}
		for _, raw := range page.Entities {
			var ent readEntity
			if err := json.Unmarshal(raw, &ent); err != nil {
				return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			out = append(out, Record{
				PartitionKey: ent.PartitionKey,
				RowKey:       ent.RowKey,
				Number:       ent.Number,
				TrackID:      ent.TrackID,
				Timestamp:    ent.Timestamp,
			})
		}
	}
	return out, nil
}

// numberFilter builds an OData filter on the number property.
// Single quotes are doubled as required by OData string literals.
func numberFilter(number string) string {
	return "number eq '" + strings.ReplaceAll(number, "'", "''") + "'"
}
