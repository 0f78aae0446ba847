package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Razorpay     Razorpay     `mapstructure:",squash"`
	AdMob        AdMob        `mapstructure:",squash"`
	Adjust       Adjust       `mapstructure:",squash"`
	AppStore     AppStore     `mapstructure:",squash"`
	PlayStore    PlayStore    `mapstructure:",squash"`
	ExchangeRate ExchangeRate `mapstructure:",squash"`
	TimeAPI      TimeAPI      `mapstructure:",squash"`
	ReportSink   ReportSink   `mapstructure:",squash"`
	ReportSync   ReportSync   `mapstructure:",squash"`
	Excel        Excel        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Razorpay struct {
	BaseURL   string `mapstructure:"razorpay_base_url"`
	KeyID     string `mapstructure:"razorpay_key_id"`
	KeySecret string `mapstructure:"razorpay_key_secret"`
	PageSize  int    `mapstructure:"razorpay_page_size"`
}

// MissingVars lists the unset required variables, used for the eager
// configuration-error responses.
func (r Razorpay) MissingVars() []string {
	var missing []string
	if r.KeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if r.KeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	return missing
}

type AdMob struct {
	BaseURL      string `mapstructure:"admob_base_url"`
	TokenURL     string `mapstructure:"admob_token_url"`
	ClientID     string `mapstructure:"admob_client_id"`
	ClientSecret string `mapstructure:"admob_client_secret"`
	RefreshToken string `mapstructure:"admob_refresh_token"`
	PublisherID  string `mapstructure:"admob_publisher_id"`
}

func (a AdMob) MissingVars() []string {
	var missing []string
	if a.ClientID == "" {
		missing = append(missing, "ADMOB_CLIENT_ID")
	}
	if a.ClientSecret == "" {
		missing = append(missing, "ADMOB_CLIENT_SECRET")
	}
	if a.RefreshToken == "" {
		missing = append(missing, "ADMOB_REFRESH_TOKEN")
	}
	if a.PublisherID == "" {
		missing = append(missing, "ADMOB_PUBLISHER_ID")
	}
	return missing
}

type Adjust struct {
	BaseURL           string `mapstructure:"adjust_base_url"`
	APIToken          string `mapstructure:"adjust_api_token"`
	AppToken          string `mapstructure:"adjust_app_token"`
	ViewEventToken    string `mapstructure:"adjust_view_event_token"`
	InstallEventToken string `mapstructure:"adjust_install_event_token"`
}

func (a Adjust) MissingVars() []string {
	var missing []string
	if a.APIToken == "" {
		missing = append(missing, "ADJUST_API_TOKEN")
	}
	if a.AppToken == "" {
		missing = append(missing, "ADJUST_APP_TOKEN")
	}
	return missing
}

type AppStore struct {
	BaseURL        string `mapstructure:"appstore_base_url"`
	IssuerID       string `mapstructure:"appstore_issuer_id"`
	KeyID          string `mapstructure:"appstore_key_id"`
	PrivateKey     string `mapstructure:"appstore_private_key"`
	PrivateKeyPath string `mapstructure:"appstore_private_key_path"`
	VendorNumber   string `mapstructure:"appstore_vendor_number"`
	AppleID        string `mapstructure:"appstore_apple_id"`
}

func (a AppStore) MissingVars() []string {
	var missing []string
	if a.IssuerID == "" {
		missing = append(missing, "APPSTORE_ISSUER_ID")
	}
	if a.KeyID == "" {
		missing = append(missing, "APPSTORE_KEY_ID")
	}
	if a.PrivateKey == "" && a.PrivateKeyPath == "" {
		missing = append(missing, "APPSTORE_PRIVATE_KEY")
	}
	if a.VendorNumber == "" {
		missing = append(missing, "APPSTORE_VENDOR_NUMBER")
	}
	if a.AppleID == "" {
		missing = append(missing, "APPSTORE_APPLE_ID")
	}
	return missing
}

type PlayStore struct {
	StorageBaseURL     string `mapstructure:"playstore_storage_base_url"`
	Bucket             string `mapstructure:"playstore_bucket"`
	ReportPrefix       string `mapstructure:"playstore_report_prefix"`
	ServiceAccountFile string `mapstructure:"playstore_service_account_file"`
}

func (p PlayStore) MissingVars() []string {
	var missing []string
	if p.Bucket == "" {
		missing = append(missing, "PLAYSTORE_BUCKET")
	}
	if p.ServiceAccountFile == "" {
		missing = append(missing, "PLAYSTORE_SERVICE_ACCOUNT_FILE")
	}
	return missing
}

type ExchangeRate struct {
	BaseURL string `mapstructure:"exchange_rate_base_url"`
}

type TimeAPI struct {
	BaseURL string `mapstructure:"time_api_base_url"`
}

type ReportSink struct {
	EnvMode string `mapstructure:"env_mode"`
	DevURL  string `mapstructure:"report_sink_dev_url"`
	QAURL   string `mapstructure:"report_sink_qa_url"`
	LiveURL string `mapstructure:"report_sink_live_url"`
}

// EndpointFor resolves the persistence endpoint for the environment.
func (r ReportSink) EndpointFor(mode string) (string, bool) {
	switch strings.ToLower(mode) {
	case "dev":
		return r.DevURL, true
	case "qa":
		return r.QAURL, true
	case "live":
		return r.LiveURL, true
	}
	return "", false
}

type ReportSync struct {
	CronSchedule   string `mapstructure:"report_sync_cron"`
	Enabled        bool   `mapstructure:"report_sync_enabled"`
	DateOffsetDays int    `mapstructure:"report_date_offset"`
	RequestDelayMs int    `mapstructure:"report_request_delay_ms"`
}

type Excel struct {
	DaysCount int `mapstructure:"excel_report_days_count"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8888)

	viper.SetDefault("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1")
	viper.SetDefault("RAZORPAY_PAGE_SIZE", 100)

	viper.SetDefault("ADMOB_BASE_URL", "https://admob.googleapis.com/v1")
	viper.SetDefault("ADMOB_TOKEN_URL", "https://oauth2.googleapis.com/token")

	viper.SetDefault("ADJUST_BASE_URL", "https://automate.adjust.com/reports-service/report")

	viper.SetDefault("APPSTORE_BASE_URL", "https://api.appstoreconnect.apple.com")

	viper.SetDefault("PLAYSTORE_STORAGE_BASE_URL", "https://storage.googleapis.com")
	viper.SetDefault("PLAYSTORE_REPORT_PREFIX", "stats/installs/")

	viper.SetDefault("EXCHANGE_RATE_BASE_URL", "https://api.exchangerate-api.com")
	viper.SetDefault("TIME_API_BASE_URL", "https://timeapi.io")

	viper.SetDefault("ENV_MODE", "dev")
	viper.SetDefault("REPORT_SINK_DEV_URL", "https://tuktukiapp-dev-219733694412.asia-south1.run.app/api/addPerformanceReport")
	viper.SetDefault("REPORT_SINK_QA_URL", "https://tuktuki-mobile-app-qa-886129854521.asia-south1.run.app/api/addPerformanceReport")
	viper.SetDefault("REPORT_SINK_LIVE_URL", "https://tuktukiapp-236950728917.asia-south1.run.app/api/addPerformanceReport")

	// Daily report sync runs after the upstream APIs have settled
	// yesterday's numbers (IST morning).
	viper.SetDefault("REPORT_SYNC_CRON", "30 8 * * *")
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_DATE_OFFSET", 1)
	viper.SetDefault("REPORT_REQUEST_DELAY_MS", 300)

	viper.SetDefault("EXCEL_REPORT_DAYS_COUNT", 7)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
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

	if config.AppStore.PrivateKey == "" && config.AppStore.PrivateKeyPath != "" {
		key, err := os.ReadFile(config.AppStore.PrivateKeyPath)
		if err != nil {
			logrus.WithError(err).Warn("config: could not read App Store private key file")
		} else {
			config.AppStore.PrivateKey = string(key)
		}
	}

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found in known locations")
}
