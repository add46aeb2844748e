package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded resumes and hands back a URL. Real hosting is an
// external collaborator; the local implementation keeps the contract.
type Store interface {
	Save(name string, r io.Reader) (string, error)
}

// LocalStore writes files under Dir and returns BaseURL-prefixed paths.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create resume dir: %w", err)
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(name string, r io.Reader) (string, error) {
	fileName := uuid.NewString() + "-" + sanitize(name)
	path := filepath.Join(s.Dir, fileName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write resume file: %w", err)
	}
	return s.BaseURL + "/" + fileName, nil
}

// sanitize keeps only the base name and strips characters that have no
// business in a file name.
func sanitize(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "resume"
	}
	return b.String()
}
