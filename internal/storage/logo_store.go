package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for logo files outside the accepted set
// of image extensions.
var ErrUnsupportedFormat = errors.New("unsupported logo format")

var allowedLogoExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

// LogoStore saves workshop branding logos on local disk and hands back the
// reference string stored on the workshop. File contents are not inspected
// beyond the extension check at this boundary.
type LogoStore struct {
	dir string
}

// NewLogoStore creates the upload directory if needed.
func NewLogoStore(dir string) (*LogoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LogoStore{dir: dir}, nil
}

// Save stores the logo for a workshop and returns its reference string
// ("logos/ws_<id><ext>"). The file name is derived from the workshop id,
// never from the uploaded name.
func (s *LogoStore) Save(workshopID uint64, originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedLogoExtensions[ext]; !ok {
		return "", ErrUnsupportedFormat
	}

	name := fmt.Sprintf("ws_%d%s", workshopID, ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create logo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write logo file: %w", err)
	}

	return "logos/" + name, nil
}
