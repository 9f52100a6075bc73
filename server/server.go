package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Daskott/dogcare/server/backup"
	"github.com/Daskott/dogcare/server/gstorage"
	"github.com/Daskott/dogcare/server/logger"
	"github.com/Daskott/dogcare/server/models"
	"github.com/Daskott/dogcare/shared"
	"github.com/spf13/viper"
)

var logg = logger.NewLogger()

// Start reads the server config, prepares the db & serves until SIGINT/SIGTERM
func Start(config *viper.Viper, devMode bool) {
	serverConfig, err := shared.NewServerConfig(config)
	fatalOnError(err)

	dbRootDir := dbRootDirectory(serverConfig.Sqlite, devMode)

	var backups *backup.Backup
	if serverConfig.Google.Storage.EnableSqliteBackupAndSync {
		backups, err = newBackup(serverConfig, dbRootDir)
		fatalOnError(err)
		fatalOnError(backups.Restore())
	}

	fatalOnError(models.AutoMigrate(serverConfig.Sqlite.PassPhrase, dbRootDir))

	router, err := newRouter(serverConfig.Dogcare.SecretKey)
	fatalOnError(err)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%v", serverConfig.Dogcare.Listener.Port),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	if backups != nil {
		fatalOnError(backups.Start())
	}

	go serve(server)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	cleanup(backups, server)
}

// Migrate creates or updates the db schema, without serving
func Migrate(config *viper.Viper, devMode bool) error {
	serverConfig, err := shared.NewServerConfig(config)
	if err != nil {
		return err
	}

	err = models.AutoMigrate(serverConfig.Sqlite.PassPhrase, dbRootDirectory(serverConfig.Sqlite, devMode))
	if err != nil {
		return err
	}

	logg.Info("Database schema is up to date")
	return nil
}

func newBackup(serverConfig *shared.ServerConfig, dbRootDir string) (*backup.Backup, error) {
	storage, err := gstorage.NewGStorage(serverConfig.Google.ApplicationCredentials)
	if err != nil {
		return nil, err
	}

	dbFilePath, err := models.DbFilePath(dbRootDir)
	if err != nil {
		return nil, err
	}

	return backup.New(
		storage,
		serverConfig.Google.Storage,
		dbFilePath,
		models.Checkpoint,
		serverConfig.Dogcare.Cron.TimeZone,
	), nil
}
