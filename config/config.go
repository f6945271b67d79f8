package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type AppConfig struct {
	LoaderConfig *LoaderConfig `mapstructure:"loader"`
	SortConfig   *SortConfig   `mapstructure:"sort"`
	ServerConfig *ServerConfig `mapstructure:"server"`
	LogConfig    *LogConfig    `mapstructure:"log"`
	OutputConfig *OutputConfig `mapstructure:"output"`
}

func New() *AppConfig {
	return &AppConfig{
		LoaderConfig: NewLoaderConfig(),
		SortConfig:   NewSortConfig(),
		ServerConfig: NewServerConfig(),
		LogConfig:    NewLogConfig(),
		OutputConfig: NewOutputConfig(),
	}
}

// Load overlays defaults with the optional config file at path and with
// BIBSORT_* environment variables (BIBSORT_LOADER_PATH, BIBSORT_SERVER_PORT, ...).
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v, New())

	v.SetEnvPrefix("bibsort")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file '%s'", path)
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can see it.
func setDefaults(v *viper.Viper, d *AppConfig) {
	v.SetDefault("loader.path", d.LoaderConfig.Path)
	v.SetDefault("loader.max_line_bytes", d.LoaderConfig.MaxLineBytes)
	v.SetDefault("sort.stable", d.SortConfig.Stable)
	v.SetDefault("sort.verify", d.SortConfig.Verify)
	v.SetDefault("sort.max_heap_capacity", d.SortConfig.MaxHeapCapacity)
	v.SetDefault("server.host", d.ServerConfig.Host)
	v.SetDefault("server.port", d.ServerConfig.Port)
	v.SetDefault("log.level", d.LogConfig.Level)
	v.SetDefault("output.format", d.OutputConfig.Format)
}
