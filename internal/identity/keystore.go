package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// KeyStore persists the durable anonymous identifier for a device. The key
// is minted once, reused for every subsequent join from that device, and
// never expires, rotates, or gets validated server-side.
type KeyStore struct {
	path string
}

// NewKeyStore returns a KeyStore backed by the given file path.
func NewKeyStore(path string) *KeyStore {
	return &KeyStore{path: path}
}

// GetOrCreate returns the stored guest identity key, minting and persisting
// a new one on first use.
func (s *KeyStore) GetOrCreate() (string, error) {
	data, err := os.ReadFile(s.path)
	if err == nil {
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read guest identity key: %w", err)
	}

	key := uuid.New().String()
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return "", fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(key+"\n"), 0600); err != nil {
		return "", fmt.Errorf("failed to persist guest identity key: %w", err)
	}
	return key, nil
}
