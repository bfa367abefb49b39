package config

import (
	"os"

	"github.com/spf13/viper"
)

type AppConfig struct {
	ServerURL string
	Token     string
	Name      string
	FreqSec   int
	LogPath   string
}

var cfg AppConfig

func Init(path string) AppConfig {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	hostname, _ := os.Hostname()
	v.SetDefault("agent.server_url", "http://127.0.0.1:9400")
	v.SetDefault("agent.name", hostname)
	v.SetDefault("agent.freq_sec", 10)
	_ = v.ReadInConfig()

	cfg = AppConfig{
		ServerURL: v.GetString("agent.server_url"),
		Token:     v.GetString("agent.token"),
		Name:      v.GetString("agent.name"),
		FreqSec:   v.GetInt("agent.freq_sec"),
		LogPath:   v.GetString("agent.log_path"),
	}
	if cfg.FreqSec <= 0 {
		cfg.FreqSec = 10
	}
	return cfg
}

func Get() AppConfig { return cfg }
