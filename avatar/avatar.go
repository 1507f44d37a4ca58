// Package avatar validates and stores profile photos.
package avatar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/lixenwraith/reportdeck/store"
)

// MaxSize is the largest accepted photo in bytes
const MaxSize = 2 << 20

var (
	ErrEmpty           = errors.New("empty image")
	ErrTooLarge        = errors.New("image too large")
	ErrUnsupportedType = errors.New("unsupported image type")
)

var allowedTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// Store is the subset of the store used for uploads
type Store interface {
	AccountByEmail(ctx context.Context, email string) (store.Account, error)
	SaveAvatar(ctx context.Context, accountID int64, contentType string, data []byte) (string, error)
}

// Validate sniffs the content type and enforces size limits
func Validate(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if len(data) > MaxSize {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), MaxSize)
	}
	ct := http.DetectContentType(data)
	if !slices.Contains(allowedTypes, ct) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
	}
	return ct, nil
}

// Upload validates data and stores it as the avatar of email, returns the avatar id
func Upload(ctx context.Context, st Store, email string, data []byte) (string, error) {
	ct, err := Validate(data)
	if err != nil {
		return "", err
	}
	acct, err := st.AccountByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	id, err := st.SaveAvatar(ctx, acct.ID, ct, data)
	if err != nil {
		return "", fmt.Errorf("save avatar for %s: %w", email, err)
	}
	return id, nil
}
