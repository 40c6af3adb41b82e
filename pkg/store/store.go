// Package store persists the per-account available balances scraped from
// the accounts overview page, so a later statement export can merge them
// in. It is the only state that outlives a single run.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store is the balance snapshot contract: overwritten whenever the
// overview page is captured, read-only during an export.
type Store interface {
	Get(accountID string) (string, bool)
	Set(accountID, value string) error
}

// FileStore keeps the snapshots in a small YAML map on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

func (s *FileStore) Get(accountID string) (string, bool) {
	balances, err := s.load()
	if err != nil {
		return "", false
	}
	value, ok := balances[accountID]
	return value, ok
}

func (s *FileStore) Set(accountID, value string) error {
	balances, err := s.load()
	if err != nil {
		return err
	}
	balances[accountID] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	data, err := yaml.Marshal(balances)
	if err != nil {
		return fmt.Errorf("encoding balances: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing balances file: %w", err)
	}
	return nil
}

// load reads the snapshot file. A missing file is an empty store, not an
// error.
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading balances file: %w", err)
	}

	balances := map[string]string{}
	if err := yaml.Unmarshal(data, &balances); err != nil {
		return nil, fmt.Errorf("decoding balances file: %w", err)
	}
	return balances, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
