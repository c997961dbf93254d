// Package disk stores values as files under a base directory using diskv.
// It is the closest server-side analogue of browser local storage: one flat
// namespace that survives restarts on a single machine.
package disk

import (
	"context"
	"encoding/base64"
	"errors"
	"io/fs"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/mcoot/easylog/internal/storage"
)

// Config holds disk storage settings
type Config struct {
	// BasePath is the directory holding the key files
	BasePath string
	// CacheSizeMax bounds the in-process read cache in bytes
	CacheSizeMax uint64
}

// DefaultConfig returns defaults for disk storage
func DefaultConfig() Config {
	return Config{
		BasePath:     "data/easylog",
		CacheSizeMax: 1024 * 1024, // 1MB
	}
}

// Storage is a diskv-backed implementation of the storage interface
type Storage struct {
	d *diskv.Diskv
}

// New creates a disk storage rooted at cfg.BasePath
func New(cfg Config) *Storage {
	return &Storage{d: diskv.New(diskv.Options{
		BasePath:          cfg.BasePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      cfg.CacheSizeMax,
	})}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", storage.ErrNotFound
		}
		return "", err
	}
	return string(val), nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Keys lists every stored key
func (s *Storage) Keys(ctx context.Context) []string {
	var keys []string
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys
}

// Entity names are free text of any length, so a key is stored under its
// base64url form split into segments that stay below file name limits.
// Directory segments carry a "." suffix, which base64url never produces, so a
// directory can never shadow a file of a shorter key.
const (
	segmentLen = 128
	dirSuffix  = "."
)

func keyToPathTransform(key string) *diskv.PathKey {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(key))

	var path []string
	for len(encoded) > segmentLen {
		path = append(path, encoded[:segmentLen]+dirSuffix)
		encoded = encoded[segmentLen:]
	}
	return &diskv.PathKey{Path: path, FileName: encoded}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	var b strings.Builder
	for _, segment := range pathKey.Path {
		b.WriteString(strings.TrimSuffix(segment, dirSuffix))
	}
	b.WriteString(pathKey.FileName)

	key, err := base64.RawURLEncoding.DecodeString(b.String())
	if err != nil {
		return pathKey.FileName
	}
	return string(key)
}
