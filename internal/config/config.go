package config

import (
	"log"

	"github.com/spf13/viper"
)

// SMS backend selection modes. "live" talks to the provider's public URL,
// "tunnel" routes through a local tunnel URL, "disabled" swaps in the stub
// provider so the app runs with no SMS account at all.
const (
	SMSModeLive     = "live"
	SMSModeTunnel   = "tunnel"
	SMSModeDisabled = "disabled"
)

type Config struct {
	DBUrl        string `mapstructure:"DB_URL"`
	RedisURL     string `mapstructure:"REDIS_URL"`
	Port         string `mapstructure:"PORT"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	SMSAPIKey    string `mapstructure:"SMS_API_KEY"`
	SMSBaseURL   string `mapstructure:"SMS_BASE_URL"`
	SMSTunnelURL string `mapstructure:"SMS_TUNNEL_URL"`
	SMSMode      string `mapstructure:"SMS_MODE"`
	CountryCode  string `mapstructure:"COUNTRY_CODE"`
}

func LoadConfig() Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SMS_BASE_URL", "https://2factor.in/API/V1")
	viper.SetDefault("SMS_MODE", SMSModeLive)
	viper.SetDefault("COUNTRY_CODE", "91")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, using env variables only")
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal("config unmarshal error:", err)
	}

	return c
}

// SMSEndpoint returns the provider base URL for the configured mode.
// Disabled mode returns an empty string; callers wire the stub provider instead.
func (c Config) SMSEndpoint() string {
	switch c.SMSMode {
	case SMSModeTunnel:
		return c.SMSTunnelURL
	case SMSModeDisabled:
		return ""
	default:
		return c.SMSBaseURL
	}
}
