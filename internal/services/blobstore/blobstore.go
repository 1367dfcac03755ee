// Package blobstore downloads whole blobs from a container into local files.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidBlobName is returned for names that would escape the container.
var ErrInvalidBlobName = errors.New("invalid blob name")

// Downloader streams the full contents of a named blob to w.
type Downloader interface {
	Download(ctx context.Context, blobName string, w io.Writer) error
}

// ValidateBlobName rejects empty, absolute, and parent-relative names.
func ValidateBlobName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidBlobName)
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return fmt.Errorf("%w: %q", ErrInvalidBlobName, name)
	}
	for _, seg := range strings.Split(path.Clean(name), "/") {
		if seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidBlobName, name)
		}
	}
	return nil
}

// DownloadToPath downloads blobName into destinationPath. The blob is written to a
// temporary file in the destination directory and renamed into place, so readers
// never observe a partially written file.
func DownloadToPath(ctx context.Context, d Downloader, blobName, destinationPath string) (err error) {
	if err := ValidateBlobName(blobName); err != nil {
		return err
	}
	dir := filepath.Dir(destinationPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destinationPath)+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = d.Download(ctx, blobName, tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to download blob %q: %w", blobName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), destinationPath); err != nil {
		return fmt.Errorf("failed to move blob into place: %w", err)
	}
	return nil
}
