package config

type LoaderConfig struct {
	// index file, one article per line
	Path string `mapstructure:"path"`

	// longest accepted line, abstracts included
	MaxLineBytes int `mapstructure:"max_line_bytes"`
}

func NewLoaderConfig() *LoaderConfig {
	return &LoaderConfig{
		Path:         "articles.txt",
		MaxLineBytes: 1 << 20,
	}
}
