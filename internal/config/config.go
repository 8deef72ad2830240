/**
 * @description
 * This file is responsible for managing the configuration of the portal
 * frontend. It uses the Viper library to read settings from environment
 * variables or a .env file, making the application environment-agnostic.
 *
 * @dependencies
 * - github.com/spf13/viper: For configuration management.
 *
 * @notes
 * - Configuration is loaded into a `Config` struct for type-safe access
 *   throughout the application.
 * - Base URLs are per backend resource; verbs and payload shapes are the
 *   stable contract, the hosts are deployment details.
 */
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application. The values are read
// by viper from a config file or environment variables.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`

	UserAPIBaseURL         string `mapstructure:"USER_API_BASE_URL"`
	PolicyAPIBaseURL       string `mapstructure:"POLICY_API_BASE_URL"`
	ClaimsAPIBaseURL       string `mapstructure:"CLAIMS_API_BASE_URL"`
	PaymentAPIBaseURL      string `mapstructure:"PAYMENT_API_BASE_URL"`
	NotificationAPIBaseURL string `mapstructure:"NOTIFICATION_API_BASE_URL"`
	GatewayURL             string `mapstructure:"GATEWAY_URL"`

	// SessionCookieName is the backend session cookie forwarded on every
	// outbound call.
	SessionCookieName string `mapstructure:"SESSION_COOKIE_NAME"`

	PortalSessionTTLMinutes int    `mapstructure:"PORTAL_SESSION_TTL_MINUTES"`
	SessionRefreshSchedule  string `mapstructure:"SESSION_REFRESH_SCHEDULE"`
	SessionSweepSchedule    string `mapstructure:"SESSION_SWEEP_SCHEDULE"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("USER_API_BASE_URL", "http://localhost:8081/api/users")
	viper.SetDefault("POLICY_API_BASE_URL", "http://localhost:8082/api/policies")
	viper.SetDefault("CLAIMS_API_BASE_URL", "http://localhost:8083/api/claims")
	viper.SetDefault("PAYMENT_API_BASE_URL", "http://localhost:8084/api/payments")
	viper.SetDefault("NOTIFICATION_API_BASE_URL", "http://localhost:8085/api/notifications")
	viper.SetDefault("GATEWAY_URL", "http://localhost:8903")
	viper.SetDefault("SESSION_COOKIE_NAME", "EINSURANCE_SESSION")
	viper.SetDefault("PORTAL_SESSION_TTL_MINUTES", 60)
	viper.SetDefault("SESSION_REFRESH_SCHEDULE", "@every 10m")
	viper.SetDefault("SESSION_SWEEP_SCHEDULE", "@every 5m")

	// Bind env vars explicitly
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("USER_API_BASE_URL")
	_ = viper.BindEnv("POLICY_API_BASE_URL")
	_ = viper.BindEnv("CLAIMS_API_BASE_URL")
	_ = viper.BindEnv("PAYMENT_API_BASE_URL")
	_ = viper.BindEnv("NOTIFICATION_API_BASE_URL")
	_ = viper.BindEnv("GATEWAY_URL")
	_ = viper.BindEnv("SESSION_COOKIE_NAME")
	_ = viper.BindEnv("PORTAL_SESSION_TTL_MINUTES")
	_ = viper.BindEnv("SESSION_REFRESH_SCHEDULE")
	_ = viper.BindEnv("SESSION_SWEEP_SCHEDULE")

	err = viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine; environment variables cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, err
	}

	return config, nil
}
