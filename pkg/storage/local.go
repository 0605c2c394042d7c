package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local writes objects under dir/bucket on the serving host's filesystem.
// Objects are exposed by the /uploads/ file server, so the derived URL is a
// path relative to the site root unless a base URL is configured.
type Local struct {
	dir    string
	bucket string
	base   string
}

func NewLocal(dir, bucket, baseURL string) *Local {
	return &Local{dir: dir, bucket: bucket, base: strings.TrimRight(baseURL, "/")}
}

func (l *Local) Upload(_ context.Context, key, _ string, r io.Reader) (string, error) {
	path := filepath.Join(l.dir, l.bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("local mkdir for %s: %w", key, err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("local create %s: %w", key, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("local write %s: %w", key, err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", l.base, l.bucket, key), nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	path := filepath.Join(l.dir, l.bucket, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("local remove %s: %w", key, err)
	}
	return nil
}
