// Package fs provides file-based persistence for nearby.
package fs

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwojciec/nearby"
)

// Ensure Storage implements nearby.Storage at compile time.
var _ nearby.Storage = (*Storage)(nil)

// Storage persists values as JSON files named <name>.json. The bundle is a
// read-only file system; the other locations are directories under Home.
type Storage struct {
	bundle iofs.FS
	home   Home
	logger *slog.Logger
}

// NewStorage creates a Storage. A nil logger discards failure logs.
func NewStorage(bundle iofs.FS, home Home, logger *slog.Logger) *Storage {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Storage{
		bundle: bundle,
		home:   home,
		logger: logger.With("component", "storage"),
	}
}

// Path returns the file path for name in a writable location. It returns
// an EINVALID error for the bundle and unknown locations.
func (s *Storage) Path(name string, loc nearby.StorageLocation) (string, error) {
	if name == "" {
		return "", nearby.Errorf(nearby.EINVALID, "storage name required")
	}
	switch loc {
	case nearby.StorageDocuments:
		return filepath.Join(s.home.Documents(), name+".json"), nil
	case nearby.StorageApplicationSupport:
		return filepath.Join(s.home.ApplicationSupport(), name+".json"), nil
	default:
		return "", nearby.Errorf(nearby.EINVALID, "storage location %s is not writable", loc)
	}
}

// Store encodes v as JSON and atomically replaces the file for name.
func (s *Storage) Store(name string, loc nearby.StorageLocation, v any) bool {
	if err := s.store(name, loc, v); err != nil {
		s.logger.Error("store failed", "name", name, "location", loc, "err", err)
		return false
	}
	return true
}

func (s *Storage) store(name string, loc nearby.StorageLocation, v any) error {
	path, err := s.Path(name, loc)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Retrieve decodes the file for name into v. A missing file returns false
// without logging.
func (s *Storage) Retrieve(name string, loc nearby.StorageLocation, v any) bool {
	data, err := s.read(name, loc)
	if errors.Is(err, iofs.ErrNotExist) {
		return false
	}
	if err == nil {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		s.logger.Error("retrieve failed", "name", name, "location", loc, "err", err)
		return false
	}
	return true
}

func (s *Storage) read(name string, loc nearby.StorageLocation) ([]byte, error) {
	if loc == nearby.StorageBundle {
		if s.bundle == nil {
			return nil, iofs.ErrNotExist
		}
		return iofs.ReadFile(s.bundle, name+".json")
	}
	path, err := s.Path(name, loc)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
