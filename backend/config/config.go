package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	DSN    string
}

type Auth struct {
	// Token is the shared-secret bearer credential agents present.
	Token string
	// Operator holds the seeded operator account; login issues a JWT
	// accepted by the same middleware.
	OperatorUser string
	OperatorPass string
	JWTSecret    string
	JWTIssuer    string
	JWTExpMin    int
}

type Liveness struct {
	// ThresholdSec is how long an agent may go without checking in
	// before the sweep marks it offline.
	ThresholdSec int
}

type Config struct {
	Server   Server
	DB       DB
	Auth     Auth
	Liveness Liveness
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 9400)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "fleetd.db")
	v.SetDefault("auth.jwt.issuer", "fleetd")
	v.SetDefault("auth.jwt.exp_min", 60)
	v.SetDefault("liveness.threshold_sec", 30)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB:     DB{Driver: v.GetString("db.driver"), DSN: v.GetString("db.dsn")},
		Auth: Auth{
			Token:        v.GetString("auth.token"),
			OperatorUser: v.GetString("auth.operator.user"),
			OperatorPass: v.GetString("auth.operator.pass"),
			JWTSecret:    v.GetString("auth.jwt.secret"),
			JWTIssuer:    v.GetString("auth.jwt.issuer"),
			JWTExpMin:    v.GetInt("auth.jwt.exp_min"),
		},
		Liveness: Liveness{ThresholdSec: v.GetInt("liveness.threshold_sec")},
	}
	if cfg.Auth.Token == "" {
		return nil, fmt.Errorf("auth.token must be set")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "dev-secret"
	}
	if cfg.Liveness.ThresholdSec <= 0 {
		cfg.Liveness.ThresholdSec = 30
	}
	return cfg, nil
}
