// Package avatar converts a local image file into the base64 data URL the
// backend stores as avatarUrl.
package avatar

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"github.com/melmoskitchen/pantry/internal/errors"
)

// MaxFileSize is the upload limit in bytes (500KB).
const MaxFileSize = 500000

// EncodeFile reads path and returns a data URL ("data:image/png;base64,...").
// Files over MaxFileSize are rejected before any bytes are encoded, matching
// the pre-network validation the profile screen performs.
func EncodeFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if info.Size() > MaxFileSize {
		return "", errors.NewAvatarTooLargeError()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	// Stat can race with a growing file; the limit is on what we actually read.
	if len(data) > MaxFileSize {
		return "", errors.NewAvatarTooLargeError()
	}

	return Encode(data), nil
}

// Encode converts raw image bytes into a data URL, sniffing the content type.
func Encode(data []byte) string {
	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
