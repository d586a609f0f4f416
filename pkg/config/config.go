package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Insight   InsightConfig
	RateLimit RateLimitConfig
	Limits    LimitsConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

type InsightConfig struct {
	Enabled     bool
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	TimeoutSec  int
}

type RateLimitConfig struct {
	MaxRequestsPerMinute int
}

type LimitsConfig struct {
	MaxResumeLength         int
	MaxJobDescriptionLength int
	MaxCollateralLength     int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/fitscore")

	viper.SetEnvPrefix("FITSCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 2097152)

	viper.SetDefault("insight.enabled", false)
	viper.SetDefault("insight.model", "gpt-4")
	viper.SetDefault("insight.temperature", 0.2)
	viper.SetDefault("insight.maxTokens", 2048)
	viper.SetDefault("insight.timeoutSec", 30)

	viper.SetDefault("ratelimit.maxRequestsPerMinute", 60)

	viper.SetDefault("limits.maxResumeLength", 100000)
	viper.SetDefault("limits.maxJobDescriptionLength", 50000)
	viper.SetDefault("limits.maxCollateralLength", 20000)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
