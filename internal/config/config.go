package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultEnv            = "development"
	defaultTemplatesDir   = "web/templates"
	defaultStaticDir      = "web/static"
	defaultContentDir     = "content"
	defaultDBPath         = "./dev.db"
	defaultXLSXPath       = "./intake.xlsx"
	defaultSheetsRange    = "Sheet1!A:Z"
	defaultRatePerMinute  = 10
	defaultPhoneRegion    = "US"
	defaultMailFrom       = "Studio Intake <intake@example.com>"
	defaultContactFrom    = "Studio Contact <contact@example.com>"
	defaultSMTPPort       = 587
	defaultSiteURL        = "http://localhost:8080"
	productionEnvironment = "production"
)

// Mail drivers.
const (
	MailResend = "resend"
	MailSMTP   = "smtp"
	MailNoop   = "noop"
)

// Spreadsheet drivers.
const (
	SheetGoogle = "google"
	SheetXLSX   = "xlsx"
	SheetSQLite = "sqlite"
	SheetNoop   = "noop"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env          string
	Port         string
	LogLevel     string
	SiteURL      string
	TemplatesDir string
	StaticDir    string
	ContentDir   string

	Mail    MailConfig
	Sheet   SheetConfig
	Storage StorageConfig

	RateLimitPerMinute int
	PhoneRegion        string

	// Warnings lists non-fatal configuration problems for the caller to log.
	Warnings []string
}

// MailConfig selects and configures the outbound email transport.
type MailConfig struct {
	Driver       string
	ResendAPIKey string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	From         string
	ContactFrom  string
	To           []string
}

// SheetConfig selects where intake submissions are recorded.
type SheetConfig struct {
	Driver              string
	SpreadsheetID       string
	Range               string
	ServiceAccountEmail string
	PrivateKey          string
	XLSXPath            string
	DBPath              string
	// RequireRecord fails the submission when the row cannot be written.
	RequireRecord bool
}

// StorageConfig configures S3-compatible storage for contact attachments.
// An empty Endpoint disables uploads.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == productionEnvironment
}

// IsDev reports whether the app runs in development mode.
func (c Config) IsDev() bool {
	return !c.IsProduction()
}

// Enabled reports whether attachment uploads are configured.
func (s StorageConfig) Enabled() bool {
	return s.Endpoint != ""
}

// Load reads environment variables, after loading a local .env file when
// present, and returns a populated Config.
func Load() (Config, error) {
	// Existing environment variables take precedence over the file.
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (Config, error) {
	cfg := Config{
		Env:          strings.ToLower(getEnv("APP_ENV", defaultEnv)),
		Port:         getEnv("PORT", defaultPort),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SiteURL:      strings.TrimRight(getEnv("SITE_URL", defaultSiteURL), "/"),
		TemplatesDir: getEnv("TEMPLATES_DIR", defaultTemplatesDir),
		StaticDir:    getEnv("STATIC_DIR", defaultStaticDir),
		ContentDir:   getEnv("CONTENT_DIR", defaultContentDir),
		Mail: MailConfig{
			Driver:       strings.ToLower(getEnv("MAIL_DRIVER", "")),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			From:         getEnv("MAIL_FROM", defaultMailFrom),
			ContactFrom:  getEnv("CONTACT_MAIL_FROM", defaultContactFrom),
			To:           splitCSV(getEnv("MAIL_TO", "")),
		},
		Sheet: SheetConfig{
			Driver:              strings.ToLower(getEnv("SHEET_DRIVER", "")),
			SpreadsheetID:       getEnv("GOOGLE_SHEETS_ID", ""),
			Range:               getEnv("GOOGLE_SHEETS_RANGE", defaultSheetsRange),
			ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
			PrivateKey:          NormalizePrivateKey(getEnv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY", "")),
			XLSXPath:            getEnv("XLSX_PATH", defaultXLSXPath),
			DBPath:              getEnv("DB_PATH", defaultDBPath),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET", "contact-attachments"),
		},
		PhoneRegion: strings.ToUpper(getEnv("PHONE_REGION", defaultPhoneRegion)),
	}

	var err error
	if cfg.Mail.SMTPPort, err = getInt("SMTP_PORT", defaultSMTPPort); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", defaultRatePerMinute); err != nil {
		return Config{}, err
	}
	if cfg.Sheet.RequireRecord, err = getBool("INTAKE_REQUIRE_RECORD", false); err != nil {
		return Config{}, err
	}
	if cfg.Storage.UseSSL, err = getBool("S3_USE_SSL", true); err != nil {
		return Config{}, err
	}

	cfg.Mail.Driver = cfg.resolveMailDriver()
	cfg.Sheet.Driver = cfg.resolveSheetDriver()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolveMailDriver infers the driver from the credentials present when
// MAIL_DRIVER is unset.
func (c *Config) resolveMailDriver() string {
	if c.Mail.Driver != "" {
		return c.Mail.Driver
	}
	switch {
	case c.Mail.ResendAPIKey != "":
		return MailResend
	case c.Mail.SMTPHost != "":
		return MailSMTP
	default:
		c.Warnings = append(c.Warnings, "no mail transport configured; notification emails are skipped")
		return MailNoop
	}
}

func (c *Config) resolveSheetDriver() string {
	if c.Sheet.Driver != "" {
		return c.Sheet.Driver
	}
	if c.Sheet.SpreadsheetID != "" {
		return SheetGoogle
	}
	if c.IsDev() {
		return SheetSQLite
	}
	c.Warnings = append(c.Warnings, "no spreadsheet configured; intake submissions are not recorded")
	return SheetNoop
}

func (c *Config) validate() error {
	switch c.Mail.Driver {
	case MailResend:
		if c.Mail.ResendAPIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required when MAIL_DRIVER=%s", MailResend)
		}
	case MailSMTP:
		if c.Mail.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when MAIL_DRIVER=%s", MailSMTP)
		}
	case MailNoop:
	default:
		return fmt.Errorf("unknown MAIL_DRIVER %q", c.Mail.Driver)
	}
	if c.Mail.Driver != MailNoop && len(c.Mail.To) == 0 {
		return fmt.Errorf("MAIL_TO is required when MAIL_DRIVER=%s", c.Mail.Driver)
	}

	switch c.Sheet.Driver {
	case SheetGoogle:
		if c.Sheet.SpreadsheetID == "" || c.Sheet.ServiceAccountEmail == "" || c.Sheet.PrivateKey == "" {
			return fmt.Errorf("GOOGLE_SHEETS_ID, GOOGLE_SERVICE_ACCOUNT_EMAIL and GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY are required when SHEET_DRIVER=%s", SheetGoogle)
		}
	case SheetXLSX, SheetSQLite, SheetNoop:
	default:
		return fmt.Errorf("unknown SHEET_DRIVER %q", c.Sheet.Driver)
	}

	if c.Storage.Enabled() && (c.Storage.AccessKey == "" || c.Storage.SecretKey == "") {
		return fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY are required when S3_ENDPOINT is set")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return nil
}

// NormalizePrivateKey undoes the quoting and escaped newlines that PEM keys
// pick up when stored in a single environment variable.
func NormalizePrivateKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 2 {
		if (key[0] == '"' && key[len(key)-1] == '"') || (key[0] == '\'' && key[len(key)-1] == '\'') {
			key = key[1 : len(key)-1]
		}
	}
	return strings.ReplaceAll(key, `\n`, "\n")
}

// getEnv returns the trimmed value of key, or fallback when it is unset or blank.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
