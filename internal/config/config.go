package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the service configuration, read from the environment (and .env,
// loaded by godotenv in main).
type Config struct {
	Port string

	// Storage
	StorageDriver      string // dynamodb | postgres | sqlite
	RegistrationsTable string
	QuestionsTable     string
	DatabaseDSN        string

	// AWS / DynamoDB (local endpoints need static credentials)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	// PIX merchant identity shown on every charge.
	PixKey       string
	MerchantName string
	MerchantCity string

	// Admin auth
	AdminAccounts map[string]string // email -> bcrypt hash
	TokenSecret   string
	TokenTTL      time.Duration

	// Email (Resend)
	ResendAPIKey  string
	ResendBaseURL string
	EmailFrom     string
	EmailMock     bool

	// Google Sheets
	SheetsServiceAccountEmail string
	SheetsPrivateKey          string
	SheetsDocumentID          string
	SheetsTabName             string
	SheetsBaseURL             string
	SheetsTokenURL            string

	// HTTP edge
	RedisAddr      string
	RedisPassword  string
	RateLimit      string
	AllowedOrigins []string
	// TrustedProxies lists the proxy addresses or CIDRs allowed to set
	// X-Forwarded-For. Empty means the client IP is the peer address.
	TrustedProxies []string

	// Logging
	LogLevel string
	LogFile  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", "dynamodb")
	v.SetDefault("REGISTRATIONS_TABLE", "registrations")
	v.SetDefault("QUESTIONS_TABLE", "questions")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("DYNAMODB_ENDPOINT", "")

	v.SetDefault("PIX_KEY", "upareligados@ipmanaus.com.br")
	v.SetDefault("PIX_MERCHANT_NAME", "UPA Religados")
	v.SetDefault("PIX_MERCHANT_CITY", "Manaus")

	v.SetDefault("ADMIN_ACCOUNTS", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "12h")

	v.SetDefault("RESEND_API_KEY", "")
	v.SetDefault("RESEND_BASE_URL", "https://api.resend.com")
	v.SetDefault("EMAIL_FROM", "Equipe do Retiro TF2k26 <contato@agmcm.online>")
	v.SetDefault("EMAIL_MOCK", false)

	v.SetDefault("GOOGLE_SHEETS_SERVICE_ACCOUNT_EMAIL", "")
	v.SetDefault("GOOGLE_SHEETS_PRIVATE_KEY", "")
	v.SetDefault("GOOGLE_SHEETS_DOCUMENT_ID", "")
	v.SetDefault("GOOGLE_SHEETS_TAB", "Inscrições")
	v.SetDefault("GOOGLE_SHEETS_BASE_URL", "https://sheets.googleapis.com")
	v.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TRUSTED_PROXIES", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
}

// Load reads the configuration from the process environment.
func Load() Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Port:               v.GetString("PORT"),
		StorageDriver:      strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		RegistrationsTable: v.GetString("REGISTRATIONS_TABLE"),
		QuestionsTable:     v.GetString("QUESTIONS_TABLE"),
		DatabaseDSN:        v.GetString("DATABASE_DSN"),

		AWSRegion:          v.GetString("AWS_REGION"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   v.GetString("DYNAMODB_ENDPOINT"),

		PixKey:       v.GetString("PIX_KEY"),
		MerchantName: v.GetString("PIX_MERCHANT_NAME"),
		MerchantCity: v.GetString("PIX_MERCHANT_CITY"),

		AdminAccounts: parseAdminAccounts(v.GetString("ADMIN_ACCOUNTS")),
		TokenSecret:   v.GetString("SESSION_SECRET"),
		TokenTTL:      v.GetDuration("SESSION_TTL"),

		ResendAPIKey:  v.GetString("RESEND_API_KEY"),
		ResendBaseURL: v.GetString("RESEND_BASE_URL"),
		EmailFrom:     v.GetString("EMAIL_FROM"),
		EmailMock:     v.GetBool("EMAIL_MOCK"),

		SheetsServiceAccountEmail: v.GetString("GOOGLE_SHEETS_SERVICE_ACCOUNT_EMAIL"),
		// keys coming from env files usually carry escaped newlines
		SheetsPrivateKey: strings.ReplaceAll(v.GetString("GOOGLE_SHEETS_PRIVATE_KEY"), `\n`, "\n"),
		SheetsDocumentID: v.GetString("GOOGLE_SHEETS_DOCUMENT_ID"),
		SheetsTabName:    v.GetString("GOOGLE_SHEETS_TAB"),
		SheetsBaseURL:    v.GetString("GOOGLE_SHEETS_BASE_URL"),
		SheetsTokenURL:   v.GetString("GOOGLE_OAUTH_TOKEN_URL"),

		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		TrustedProxies: splitList(v.GetString("TRUSTED_PROXIES")),

		LogLevel: v.GetString("LOG_LEVEL"),
		LogFile:  v.GetString("LOG_FILE"),
	}
}

// parseAdminAccounts reads "email:bcrypthash,email2:hash2". Hashes contain '$'
// but never ':' so the first colon splits the pair.
func parseAdminAccounts(raw string) map[string]string {
	out := map[string]string{}
	for _, item := range splitList(raw) {
		email, hash, ok := strings.Cut(item, ":")
		if !ok {
			continue
		}
		email = strings.ToLower(strings.TrimSpace(email))
		hash = strings.TrimSpace(hash)
		if email == "" || hash == "" {
			continue
		}
		out[email] = hash
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
