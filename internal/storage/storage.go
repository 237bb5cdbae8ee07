package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Storage abstracts the receipt-image backend. The local implementation
// writes under an upload directory; a cloud bucket can be dropped in behind
// the same interface.
type Storage interface {
	// Save stores the file under key, replacing any previous content
	Save(ctx context.Context, key string, contentType string, r io.Reader) error

	// Open returns the stored file for reading
	Open(key string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// List returns every stored key; used by the orphan cleanup job
	List(ctx context.Context) ([]string, error)

	// URL returns the public URL a stored key is served at
	URL(key string) string
}

// NewReceiptKey generates a storage key for an uploaded receipt image.
// ULIDs sort by creation time, which keeps the upload directory browseable.
func NewReceiptKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		ext = ".jpg"
	}
	return "receipts/" + ulid.Make().String() + ext
}
