// Package instagram holds the Instagram upload adapter. The Meta app review
// is still pending, so the adapter is a deliberate placeholder that fails
// every upload with a fixed error.
package instagram

import (
	"context"
	"errors"

	"github.com/jekoram/reelshorter/domain/dto"
	"github.com/jekoram/reelshorter/domain/repository"
)

// ErrNotSupported is the fixed failure returned for every upload attempt.
var ErrNotSupported = errors.New("instagram upload is not supported yet")

type Uploader struct{}

func NewUploader() repository.IUploader { return &Uploader{} }

func (u *Uploader) Upload(ctx context.Context, userID string, in *dto.UploadInput) (*dto.UploadResult, error) {
	return nil, ErrNotSupported
}
