package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Daskott/dogcare/server/gstorage"
	"github.com/Daskott/dogcare/shared"
	"github.com/stretchr/testify/assert"
)

type call struct {
	bucket string
	object string
	file   string
}

type StorageStub struct {
	uploads     []call
	downloads   []call
	downloadErr error
}

func (s *StorageStub) UploadFile(ctx context.Context, bucket, object, filePath string) error {
	s.uploads = append(s.uploads, call{bucket, object, filePath})
	return nil
}

func (s *StorageStub) DownloadFile(ctx context.Context, bucket, object, destFileName string) error {
	s.downloads = append(s.downloads, call{bucket, object, destFileName})
	return s.downloadErr
}

var storageConfig = shared.StorageConfig{
	Bucket:                    "dogcare",
	Prefix:                    "dogcare-test",
	SqliteBackupSchedule:      "*/30 * * * *",
	EnableSqliteBackupAndSync: true,
}

func noCheckpoint() error { return nil }

func TestObjectName(t *testing.T) {
	b := New(&StorageStub{}, storageConfig, "/tmp/db/dogcare.db", noCheckpoint, "UTC")
	assert.Equal(t, "dogcare-test/dogcare.db", b.ObjectName())
}

func TestRestore(t *testing.T) {
	dir := t.TempDir()
	dbFilePath := filepath.Join(dir, "dogcare.db")

	cases := []struct {
		description       string
		localFileExists   bool
		downloadErr       error
		expectedDownloads int
		expectErr         bool
	}{
		{"Should skip download when a local db exists", true, nil, 0, false},
		{"Should download when no local db exists", false, nil, 1, false},
		{"Should tolerate a bucket without a backup", false, gstorage.ErrObjectNotExist, 1, false},
		{"Should fail on other storage errors", false, errors.New("boom"), 1, true},
	}

	for _, tc := range cases {
		os.Remove(dbFilePath)
		if tc.localFileExists {
			assert.Nil(t, os.WriteFile(dbFilePath, []byte("db"), 0600))
		}

		stub := &StorageStub{downloadErr: tc.downloadErr}
		err := New(stub, storageConfig, dbFilePath, noCheckpoint, "UTC").Restore()

		assert.Equal(t, tc.expectErr, err != nil, tc.description)
		assert.Len(t, stub.downloads, tc.expectedDownloads, tc.description)
		if tc.expectedDownloads > 0 {
			assert.Equal(t, call{"dogcare", "dogcare-test/dogcare.db", dbFilePath}, stub.downloads[0], tc.description)
		}
	}
}

func TestRunCheckpointsBeforeUpload(t *testing.T) {
	stub := &StorageStub{}
	checkpoints := 0
	checkpoint := func() error {
		checkpoints++
		assert.Empty(t, stub.uploads, "Checkpoint should happen before the upload")
		return nil
	}

	err := New(stub, storageConfig, "/tmp/db/dogcare.db", checkpoint, "UTC").Run()
	assert.Nil(t, err)
	assert.Equal(t, 1, checkpoints)
	assert.Equal(t, []call{{"dogcare", "dogcare-test/dogcare.db", "/tmp/db/dogcare.db"}}, stub.uploads)
}

func TestRunFailsWhenCheckpointFails(t *testing.T) {
	stub := &StorageStub{}
	err := New(stub, storageConfig, "/tmp/db/dogcare.db", func() error { return errors.New("locked") }, "UTC").Run()

	assert.NotNil(t, err)
	assert.Empty(t, stub.uploads)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	config := storageConfig
	config.SqliteBackupSchedule = "not a cron"

	err := New(&StorageStub{}, config, "/tmp/db/dogcare.db", noCheckpoint, "UTC").Start()
	assert.NotNil(t, err)
}
