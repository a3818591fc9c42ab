package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. YTASSISTANT_LOG_LEVEL.
const EnvPrefix = "YTASSISTANT"

// Config holds process-level settings that are not user preferences.
type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	FFmpeg      FFmpegConfig      `mapstructure:"ffmpeg"`
	Fetch       FetchConfig       `mapstructure:"fetch"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// PreferencesConfig locates the preferences file.
type PreferencesConfig struct {
	Path string `mapstructure:"path"`
}

// FFmpegConfig locates the ffmpeg executable.
type FFmpegConfig struct {
	Path string `mapstructure:"path"`
}

// FetchConfig tunes the media fetcher. A zero Timeout means no timeout.
type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from an optional .env, an optional YAML file and
// the environment. Priority: environment variables > config file > defaults.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("ytassistant")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.ytassistant")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Fetch.Timeout < 0 {
		cfg.Fetch.Timeout = 0
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.path", "")

	v.SetDefault("preferences.path", DefaultPreferencesFile)

	v.SetDefault("ffmpeg.path", "ffmpeg")

	v.SetDefault("fetch.timeout", "0s")
}
