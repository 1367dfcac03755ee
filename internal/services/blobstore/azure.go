package blobstore

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// AzureDownloader reads blobs from an Azure Blob Storage container.
type AzureDownloader struct {
	client    *azblob.Client
	container string
}

// NewAzureDownloader connects to the storage account described by connectionString.
func NewAzureDownloader(connectionString, container string) (*AzureDownloader, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}
	return &AzureDownloader{client: client, container: container}, nil
}

func (a *AzureDownloader) Download(ctx context.Context, blobName string, w io.Writer) error {
	resp, err := a.client.DownloadStream(ctx, a.container, blobName, nil)
	if err != nil {
		return err
	}
	body := resp.Body
	defer body.Close() //nolint:errcheck

	_, err = io.Copy(w, body)
	return err
}
