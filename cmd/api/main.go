package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/eme-digital/ads-audit-api/infrastructure/database/postgres"
	"github.com/eme-digital/ads-audit-api/infrastructure/migration"
	"github.com/eme-digital/ads-audit-api/infrastructure/repository"
	"github.com/eme-digital/ads-audit-api/infrastructure/sheets"
	"github.com/eme-digital/ads-audit-api/internal/api"
	"github.com/eme-digital/ads-audit-api/internal/config"
	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/scheduler"
	"github.com/eme-digital/ads-audit-api/internal/usecases/authenticating"
	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Run(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("error applying database schema")
	}

	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.SecretKey)
	ensureAdminUser(authenticator, userRepo, cfg)

	sheetsClient := sheets.NewClient()
	fetcher := sheets.NewService(sheetsClient, cfg.Sheets)

	store := reporting.NewStore()
	reportingService := reporting.NewService(store)

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		fetcher,
		snapshotRepo,
		store,
		cfg.SnapshotSync,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting the snapshot sync scheduler")
	} else {
		logrus.Info("snapshot sync scheduler started")
	}

	server, err := api.New(
		cfg,
		reportingService,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format before any other startup step.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens and verifies the database connection.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error verifying the PostgreSQL connection")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

// ensureAdminUser seeds the bootstrap admin account on an empty database
// so the first login is possible without manual SQL.
func ensureAdminUser(authenticator authenticating.Authenticator, userRepo repository.UserRepository, cfg *config.Config) {
	if cfg.Bootstrap.AdminEmail == "" || cfg.Bootstrap.AdminPassword == "" {
		return
	}

	count, err := userRepo.CountUsers()
	if err != nil {
		logrus.WithError(err).Error("error counting users for the admin bootstrap")
		return
	}
	if count > 0 {
		return
	}

	admin := &domain.User{
		Name:         "Admin",
		Email:        cfg.Bootstrap.AdminEmail,
		PasswordHash: cfg.Bootstrap.AdminPassword,
		Active:       true,
		RoleID:       middleware.RoleAdmin,
	}

	_, err = authenticator.CreateUser(admin)
	if err != nil {
		logrus.WithError(err).Error("error creating the bootstrap admin user")
		return
	}

	logrus.Infof("bootstrap admin user %s created", cfg.Bootstrap.AdminEmail)
}
