package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ImageRule describes an uploaded image constraint: accepted extensions and
// the size ceiling in kilobytes.
type ImageRule struct {
	Mimes []string
	MaxKB int64
}

// Image is the sniffed result of an accepted upload.
type Image struct {
	ContentType string
	Extension   string
}

// CheckImage sniffs the upload and returns the first failing rule tag
// ("required", "image", "mimes" or "max"), or "" when the file is acceptable.
func CheckImage(fh *multipart.FileHeader, rule ImageRule) (Image, string, error) {
	if fh == nil || fh.Size == 0 {
		return Image{}, "required", nil
	}

	src, err := fh.Open()
	if err != nil {
		return Image{}, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return Image{}, "", fmt.Errorf("failed to detect content type: %w", err)
	}

	if !strings.HasPrefix(mt.String(), "image/") {
		return Image{}, "image", nil
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	if ext == "" {
		ext = strings.TrimPrefix(mt.Extension(), ".")
	}
	detected := strings.TrimPrefix(mt.Extension(), ".")
	if !slices.Contains(rule.Mimes, detected) || !slices.Contains(rule.Mimes, ext) {
		return Image{}, "mimes", nil
	}

	if rule.MaxKB > 0 && fh.Size > rule.MaxKB*1024 {
		return Image{}, "max", nil
	}

	return Image{ContentType: mt.String(), Extension: ext}, "", nil
}
