// Package backup keeps a copy of the sqlite db in google cloud storage.
package backup

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/Daskott/dogcare/server/gstorage"
	"github.com/Daskott/dogcare/server/logger"
	"github.com/Daskott/dogcare/shared"
	"github.com/Daskott/dogcare/utils"
	"github.com/go-co-op/gocron"
)

const (
	JOB_TAG         = "sqlite-backup"
	TRANSFER_TIMEOUT = 50 * time.Second
)

var logg = logger.NewLogger()

// Storage is the part of gstorage.GStorage used for backups
type Storage interface {
	UploadFile(ctx context.Context, bucket, object, filePath string) error
	DownloadFile(ctx context.Context, bucket, object, destFileName string) error
}

type Backup struct {
	storage       Storage
	config        shared.StorageConfig
	dbFilePath    string
	checkpoint    func() error
	cronScheduler *gocron.Scheduler
}

// New returns a Backup of 'dbFilePath'. 'checkpoint' is called before every upload,
// to flush pending writes into the db file.
func New(storage Storage, config shared.StorageConfig, dbFilePath string, checkpoint func() error, timeZone string) *Backup {
	location, err := time.LoadLocation(timeZone)
	if err != nil {
		logg.Warnf("Unknown time zone %q, using UTC", timeZone)
		location = time.UTC
	}

	cronScheduler := gocron.NewScheduler(location)
	cronScheduler.TagsUnique()

	return &Backup{
		storage:       storage,
		config:        config,
		dbFilePath:    dbFilePath,
		checkpoint:    checkpoint,
		cronScheduler: cronScheduler,
	}
}

// ObjectName is where the db lives in the bucket i.e. <prefix>/<db file name>
func (b *Backup) ObjectName() string {
	return path.Join(b.config.Prefix, filepath.Base(b.dbFilePath))
}

// Restore downloads the db from storage, unless a local db already exists.
// A bucket without a backup is not an error.
func (b *Backup) Restore() error {
	if utils.FileExist(b.dbFilePath) {
		logg.Infof("Using existing db %v", b.dbFilePath)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), TRANSFER_TIMEOUT)
	defer cancel()

	err := b.storage.DownloadFile(ctx, b.config.Bucket, b.ObjectName(), b.dbFilePath)
	if errors.Is(err, gstorage.ErrObjectNotExist) {
		logg.Infof("No backup found in gs://%v/%v, starting with a new db", b.config.Bucket, b.ObjectName())
		return nil
	}
	if err != nil {
		return fmt.Errorf("Restore: %v", err)
	}

	return nil
}

// Run uploads the current db to storage
func (b *Backup) Run() error {
	if err := b.checkpoint(); err != nil {
		return fmt.Errorf("Run: checkpoint: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TRANSFER_TIMEOUT)
	defer cancel()

	err := b.storage.UploadFile(ctx, b.config.Bucket, b.ObjectName(), b.dbFilePath)
	if err != nil {
		return fmt.Errorf("Run: %v", err)
	}

	return nil
}

// Start schedules Run based on the 'sqliteBackupSchedule' cron expression
func (b *Backup) Start() error {
	_, err := b.cronScheduler.Cron(b.config.SqliteBackupSchedule).Tag(JOB_TAG).Do(func() {
		if err := b.Run(); err != nil {
			logg.Error(err)
		}
	})
	if err != nil {
		return fmt.Errorf("Start: %v", err)
	}

	logg.Infof("Scheduled sqlite backup to gs://%v/%v with %q", b.config.Bucket, b.ObjectName(), b.config.SqliteBackupSchedule)
	b.cronScheduler.StartAsync()
	return nil
}

// Stop cancels the schedule & takes one last backup
func (b *Backup) Stop() error {
	b.cronScheduler.Stop()
	return b.Run()
}
