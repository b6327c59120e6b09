package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                // If set, will load config from this path and not from devConfigPath
	secretsVarName = "SECRETS"               // If set, will load secrets from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets in development environment
)

const (
	defaultScanHours     = 24
	defaultImageCount    = 3
	defaultPostCharLimit = 3000
	defaultMaxNotices    = 20
	defaultStyle         = "standard"
	defaultAutopilotCron = "0 9 * * *"
	defaultTimezone      = "UTC"
)

type Config struct {
	Secrets     Secrets         `json:"-"`
	LogFile     string          `json:"log_file"`
	LogLevel    string          `json:"log_level"`
	ServicePort uint            `json:"service_port"`
	DbFile      string          `json:"db_file"`
	Backend     BackendConfig   `json:"backend"`
	Bot         BotConfig       `json:"bot"`
	Autopilot   AutopilotConfig `json:"autopilot"`
}

type BackendConfig struct {
	BaseUrl    string `json:"base_url"`
	TimeoutSec int    `json:"timeout_sec"` // 0: no client-side timeout
}

type BotConfig struct {
	DefaultStyle     string `json:"default_style"`
	DefaultScanHours int    `json:"default_scan_hours"`
	ImageCount       int    `json:"image_count"`
	PostCharLimit    int    `json:"post_char_limit"`
	MaxNotices       int    `json:"max_notices"`
}

type AutopilotConfig struct {
	Enabled      bool     `json:"enabled"`
	Schedule     string   `json:"schedule"` // cron expression, e.g. "0 9 * * *"
	Timezone     string   `json:"timezone"`
	Users        []string `json:"users"`
	Hours        int      `json:"hours"`
	ActivityType string   `json:"activity_type"`
	Style        string   `json:"style"`
	TestMode     bool     `json:"test_mode"`
	CampaignDays int      `json:"campaign_days"` // 0: no end date
}

type Secrets struct {
	ApiKeys      []string `json:"api_keys"`
	MetricsAuth  string   `json:"metrics_auth"`
	BackendToken string   `json:"backend_token"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	config.ApplyDefaults()
	return &config
}

// ApplyDefaults fills in every zero-valued tunable.
func (cfg *Config) ApplyDefaults() {
	if cfg.Bot.DefaultStyle == "" {
		cfg.Bot.DefaultStyle = defaultStyle
	}
	if cfg.Bot.DefaultScanHours <= 0 {
		cfg.Bot.DefaultScanHours = defaultScanHours
	}
	if cfg.Bot.ImageCount <= 0 {
		cfg.Bot.ImageCount = defaultImageCount
	}
	if cfg.Bot.PostCharLimit <= 0 {
		cfg.Bot.PostCharLimit = defaultPostCharLimit
	}
	if cfg.Bot.MaxNotices <= 0 {
		cfg.Bot.MaxNotices = defaultMaxNotices
	}
	if cfg.Autopilot.Schedule == "" {
		cfg.Autopilot.Schedule = defaultAutopilotCron
	}
	if cfg.Autopilot.Timezone == "" {
		cfg.Autopilot.Timezone = defaultTimezone
	}
	if cfg.Autopilot.Hours <= 0 {
		cfg.Autopilot.Hours = cfg.Bot.DefaultScanHours
	}
	if cfg.Autopilot.Style == "" {
		cfg.Autopilot.Style = cfg.Bot.DefaultStyle
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
