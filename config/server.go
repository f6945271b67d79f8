package config

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: "localhost",
		Port: 8080,
	}
}
