package config

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
	}
}

type OutputConfig struct {
	// text, json or msgpack
	Format string `mapstructure:"format"`
}

func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: "text",
	}
}
