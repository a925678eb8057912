package config

import (
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

const (
	ProviderGatewayA    = "gateway_a"
	ProviderGatewayB    = "gateway_b"
	ProviderGatewayC    = "gateway_c"
	ProviderMercadoPago = "mercadopago"
)

type ProviderConfig struct {
	Name      string
	BaseURL   string
	SecretKey string
}

type StreamConfig struct {
	PollInterval time.Duration
	GraceDelay   time.Duration
	MaxLifetime  time.Duration
	RedirectURL  string
}

type VehicleConfig struct {
	APIURL    string
	Token     string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
	// CacheTable enables the DynamoDB cache when Redis is not configured.
	CacheTable string
}

// AWSConfig is only read when a DynamoDB table is configured. Static keys
// are optional; the default credential chain is used otherwise.
type AWSConfig struct {
	Region           string
	DynamoDBEndpoint string
	AccessKeyID      string
	SecretAccessKey  string
}

// Config is loaded once at startup and treated as read-only afterwards.
type Config struct {
	Env      string
	Port     int
	LogLevel string

	DefaultProvider string
	ProviderTimeout time.Duration
	QRChartURL      string

	GatewayA ProviderConfig
	GatewayB ProviderConfig
	GatewayC ProviderConfig

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	Stream  StreamConfig
	Vehicle VehicleConfig

	RedisURL string
	NatsURL  string
	AWS      AWSConfig
}

// Load reads the process environment (and .env, through godotenv autoload).
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_PROVIDER", ProviderGatewayB)
	v.SetDefault("PROVIDER_TIMEOUT", "30s")
	v.SetDefault("QR_CHART_URL", "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=")

	v.SetDefault("GATEWAY_A_BASE_URL", "https://app.gateway-a.com.br/api/v1")
	v.SetDefault("GATEWAY_B_BASE_URL", "https://api.gateway-b.com.br/v1")
	v.SetDefault("GATEWAY_C_BASE_URL", "https://api.gateway-c.com.br")

	v.SetDefault("STREAM_POLL_INTERVAL", "1s")
	v.SetDefault("STREAM_GRACE_DELAY", "2s")
	v.SetDefault("STREAM_MAX_LIFETIME", "10m")
	v.SetDefault("PAYMENT_REDIRECT_URL", "/obrigado")

	v.SetDefault("VEHICLE_API_URL", "https://wdapi2.com.br/consulta")
	v.SetDefault("VEHICLE_TIMEOUT", "10s")
	v.SetDefault("VEHICLE_CACHE_SIZE", 1000)
	v.SetDefault("VEHICLE_CACHE_TTL", "24h")

	v.SetDefault("AWS_REGION", "us-east-1")
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Env:      strings.ToLower(v.GetString("APP_ENV")),
		Port:     v.GetInt("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),

		DefaultProvider: strings.ToLower(strings.TrimSpace(v.GetString("DEFAULT_PROVIDER"))),
		ProviderTimeout: v.GetDuration("PROVIDER_TIMEOUT"),
		QRChartURL:      v.GetString("QR_CHART_URL"),

		GatewayA: ProviderConfig{
			Name:      ProviderGatewayA,
			BaseURL:   strings.TrimRight(v.GetString("GATEWAY_A_BASE_URL"), "/"),
			SecretKey: strings.TrimSpace(v.GetString("GATEWAY_A_SECRET_KEY")),
		},
		GatewayB: ProviderConfig{
			Name:      ProviderGatewayB,
			BaseURL:   strings.TrimRight(v.GetString("GATEWAY_B_BASE_URL"), "/"),
			SecretKey: strings.TrimSpace(v.GetString("GATEWAY_B_SECRET_KEY")),
		},
		GatewayC: ProviderConfig{
			Name:      ProviderGatewayC,
			BaseURL:   strings.TrimRight(v.GetString("GATEWAY_C_BASE_URL"), "/"),
			SecretKey: strings.TrimSpace(v.GetString("GATEWAY_C_SECRET_KEY")),
		},

		MercadoPagoAccessToken: strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     isEnabled(v.GetString("PAYMENT_GATEWAY_MOCK")) || isEnabled(v.GetString("MERCADOPAGO_MOCK")),

		Stream: StreamConfig{
			PollInterval: v.GetDuration("STREAM_POLL_INTERVAL"),
			GraceDelay:   v.GetDuration("STREAM_GRACE_DELAY"),
			MaxLifetime:  v.GetDuration("STREAM_MAX_LIFETIME"),
			RedirectURL:  v.GetString("PAYMENT_REDIRECT_URL"),
		},
		Vehicle: VehicleConfig{
			APIURL:    strings.TrimRight(v.GetString("VEHICLE_API_URL"), "/"),
			Token:     strings.TrimSpace(v.GetString("VEHICLE_API_TOKEN")),
			Timeout:   v.GetDuration("VEHICLE_TIMEOUT"),
			CacheSize: v.GetInt("VEHICLE_CACHE_SIZE"),
			CacheTTL:  v.GetDuration("VEHICLE_CACHE_TTL"),

			CacheTable: strings.TrimSpace(v.GetString("VEHICLE_CACHE_TABLE")),
		},

		RedisURL: strings.TrimSpace(v.GetString("REDIS_URL")),
		NatsURL:  strings.TrimSpace(v.GetString("NATS_URL")),
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			DynamoDBEndpoint: strings.TrimSpace(v.GetString("DYNAMODB_ENDPOINT")),
			AccessKeyID:      strings.TrimSpace(v.GetString("AWS_ACCESS_KEY_ID")),
			SecretAccessKey:  strings.TrimSpace(v.GetString("AWS_SECRET_ACCESS_KEY")),
		},
	}
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

func isEnabled(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
