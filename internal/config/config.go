package config

type Config interface {
	EnvConfig
	BackendConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetDataFolder() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Backend
}

func New() Config {
	return mainConfig{}
}
