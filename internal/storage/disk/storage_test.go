package disk

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/easylog/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	dir     string
	storage *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = s.T().TempDir()
	cfg := DefaultConfig()
	cfg.BasePath = s.dir
	s.storage = New(cfg)
	s.Store = s.storage
	s.Ctx = context.Background()
}

func (s *StorageSuite) TestValuesSurviveReopen() {
	s.Require().NoError(s.storage.Set(s.Ctx, "journalClients", `["Default","Acme"]`))

	reopened := New(Config{BasePath: s.dir})
	value, err := reopened.Get(s.Ctx, "journalClients")
	s.Require().NoError(err)
	s.Equal(`["Default","Acme"]`, value)
}

func (s *StorageSuite) TestKeyWithSlashStaysInBaseDir() {
	s.Require().NoError(s.storage.Set(s.Ctx, "journalEntries_../escape", "[]"))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Len(entries, 1)
	s.False(entries[0].IsDir())

	_, err = os.Stat(filepath.Join(filepath.Dir(s.dir), "escape"))
	s.True(os.IsNotExist(err))
}

func (s *StorageSuite) TestKeysRoundTrip() {
	long := "journalEntries_" + strings.Repeat("Acme ", 60)
	_ = s.storage.Set(s.Ctx, "token", "t")
	_ = s.storage.Set(s.Ctx, "journalEntries_customer_Big Co", "[]")
	_ = s.storage.Set(s.Ctx, long, "[]")

	s.ElementsMatch([]string{"token", "journalEntries_customer_Big Co", long}, s.storage.Keys(s.Ctx))
}

func (s *StorageSuite) TestLongKeyFileNamesStayShort() {
	s.Require().NoError(s.storage.Set(s.Ctx, "journalEntries_"+strings.Repeat("x", 1000), "[]"))

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		s.Require().NoError(err)
		s.LessOrEqual(len(d.Name()), segmentLen+len(dirSuffix), path)
		return nil
	})
	s.Require().NoError(err)
}

func (s *StorageSuite) TestRemovingLongKeyPrunesDirectories() {
	long := "journalEntries_" + strings.Repeat("y", 500)
	s.Require().NoError(s.storage.Set(s.Ctx, long, "[]"))
	s.Require().NoError(s.storage.Remove(s.Ctx, long))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Empty(entries)
}
