package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary Primary       `koanf:"primary"`
	Server  ServerConfig  `koanf:"server"`
	Egopay  EgopayConfig  `koanf:"egopay"`
	Soap    SoapConfig    `koanf:"soap"`
	Logger  LoggerConfig  `koanf:"logger"`
	Tracing TracingConfig `koanf:"tracing"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// EgopayConfig seeds the gateway defaults. Live endpoints are issued per
// merchant and have no default.
type EgopayConfig struct {
	TestMode           bool   `koanf:"test_mode"`
	OrderWsdl          string `koanf:"order_wsdl" validate:"required"`
	StatusWsdl         string `koanf:"status_wsdl" validate:"required"`
	LiveOrderEndpoint  string `koanf:"live_order_endpoint" validate:"omitempty,url"`
	LiveStatusEndpoint string `koanf:"live_status_endpoint" validate:"omitempty,url"`
	ShopID             string `koanf:"shop_id"`
	User               string `koanf:"user"`
	Password           string `koanf:"password"`
	Language           string `koanf:"language" validate:"omitempty,oneof=ru en de cn"`
	Currency           string `koanf:"currency" validate:"omitempty,oneof=RUB EUR USD"`
	URLOk              string `koanf:"url_ok"`
	URLFault           string `koanf:"url_fault"`
}

type SoapConfig struct {
	Timeout   time.Duration `koanf:"timeout" validate:"required"`
	UserAgent string        `koanf:"user_agent"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

type TracingConfig struct {
	Enabled bool `koanf:"enabled"`
}

func defaults() map[string]any {
	return map[string]any{
		"primary.env":          "development",
		"server.port":          "8080",
		"server.read_timeout":  "15s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "60s",
		"egopay.test_mode":     true,
		"egopay.order_wsdl":    "resources/wsdl/orderv2.wsdl",
		"egopay.status_wsdl":   "resources/wsdl/statusv4.wsdl",
		"egopay.language":      "ru",
		"egopay.currency":      "RUB",
		"egopay.url_ok":        "/ok/",
		"egopay.url_fault":     "/fault/",
		"soap.timeout":         "30s",
		"soap.user_agent":      "egopay-gateway/1.0",
		"logger.level":         "info",
		"logger.format":        "text",
		"tracing.enabled":      false,
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default config", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// NewLogger builds the process logger from the logger section.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
