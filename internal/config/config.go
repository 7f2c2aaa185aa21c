package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Bootstrap    Bootstrap    `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Sheets holds the published-CSV URL of each snapshot tab.
type Sheets struct {
	ManagementURL    string `mapstructure:"sheets_management_url"`
	BudgetURL        string `mapstructure:"sheets_budget_url"`
	ManagerStatusURL string `mapstructure:"sheets_manager_status_url"`
	MonthlyKpiURL    string `mapstructure:"sheets_monthly_kpi_url"`
	DailyKpiURL      string `mapstructure:"sheets_daily_kpi_url"`
	AudienceAuditURL string `mapstructure:"sheets_audience_audit_url"`
	CampaignAuditURL string `mapstructure:"sheets_campaign_audit_url"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

// Bootstrap seeds the first admin account when the users table is empty.
type Bootstrap struct {
	AdminEmail    string `mapstructure:"bootstrap_admin_email"`
	AdminPassword string `mapstructure:"bootstrap_admin_password"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_audit")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("SHEETS_MANAGEMENT_URL", "")
	viper.SetDefault("SHEETS_BUDGET_URL", "")
	viper.SetDefault("SHEETS_MANAGER_STATUS_URL", "")
	viper.SetDefault("SHEETS_MONTHLY_KPI_URL", "")
	viper.SetDefault("SHEETS_DAILY_KPI_URL", "")
	viper.SetDefault("SHEETS_AUDIENCE_AUDIT_URL", "")
	viper.SetDefault("SHEETS_CAMPAIGN_AUDIT_URL", "")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 */4 * * *") // every four hours
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// godotenv first so plain env vars and .env behave the same.
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve the working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
