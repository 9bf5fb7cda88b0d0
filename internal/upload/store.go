package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge   = errors.New("file exceeds the 5 MB limit")
	ErrDisallowedType = errors.New("only .jpg, .jpeg, .png, .gif, .svg, .webp, .pdf files are allowed")
)

var allowedContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/svg+xml":   ".svg",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// Store writes uploaded files to a local directory with generated names
// and serves them back under PublicPrefix.
type Store struct {
	Dir          string
	PublicPrefix string
	MaxSizeBytes int64
}

func NewStore(dir string, maxSizeBytes int64) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("empty upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if maxSizeBytes <= 0 {
		maxSizeBytes = 5 * 1024 * 1024
	}
	return &Store{Dir: dir, PublicPrefix: "/uploads/", MaxSizeBytes: maxSizeBytes}, nil
}

// Save validates and persists a multipart file, returning its public URL
// path.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", errors.New("nil file header")
	}
	if fh.Size > s.MaxSizeBytes {
		return "", ErrFileTooLarge
	}

	ext, ok := allowedContentTypes[normalizeContentType(fh.Header.Get("Content-Type"))]
	if !ok {
		return "", ErrDisallowedType
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.MaxSizeBytes+1)); err != nil {
		return "", err
	}

	return s.PublicPrefix + name, nil
}

// Remove deletes a stored file given its public URL (or bare filename).
// A file that is already gone is not an error.
func (s *Store) Remove(fileURL string) error {
	name := filepath.Base(strings.TrimSpace(fileURL))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil
	}

	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func normalizeContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
