package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("MAP_FILE", "./data/map.osm")
	viper.SetDefault("DISTANCE_METRIC", "haversine")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")

	viper.SetDefault("NEARBY_RADIUS_MILES", 0.25)
	viper.SetDefault("BATCH_WORKERS", 4)
	viper.SetDefault("RESOLVER_CACHE_SIZE", 256)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	// proxies allowed to set X-Real-IP / X-Forwarded-For (ips or cidrs, space separated)
	viper.SetDefault("TRUSTED_PROXIES", []string{})
}

// ReadConfig loads ./data/config.(yaml|json|toml) on top of the defaults. Environment
// variables override both.
func ReadConfig() error {
	SetConfigDefaults()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
