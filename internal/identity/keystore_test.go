package identity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKeyStoreMintsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vensoc", "vensoc_guest_identity_key")
	store := NewKeyStore(path)

	first, err := store.GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if first == "" {
		t.Fatal("expected a non-empty key")
	}

	second, err := store.GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate failed on reread: %v", err)
	}
	if second != first {
		t.Errorf("key rotated: %s != %s", second, first)
	}
}

func TestKeyStoreReadsExistingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("existing-key\n"), 0600); err != nil {
		t.Fatalf("seed key: %v", err)
	}

	key, err := NewKeyStore(path).GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if key != "existing-key" {
		t.Errorf("expected existing-key, got %s", key)
	}
}

func TestKeyStoreSurvivesNewStoreInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")

	first, err := NewKeyStore(path).GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	second, err := NewKeyStore(path).GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if second != first {
		t.Errorf("key not durable across instances: %s != %s", second, first)
	}
}
