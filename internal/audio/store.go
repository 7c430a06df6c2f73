package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes finished episodes to a directory served by the HTTP layer.
// Nothing is indexed or reused; an episode lives only as long as the
// operator keeps the file around.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes the mp3 under a fresh uuid name and returns the path the
// client can fetch it from.
func (s *Store) Save(data []byte) (string, error) {
	name := fmt.Sprintf("podcast_%s.mp3", uuid.New().String())
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o640); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	return "/static/audio/" + name, nil
}
