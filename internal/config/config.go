package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

// LoadEnv loads .env into the process environment; a missing file is fine.
func LoadEnv() {
	_ = godotenv.Load(".env")
}

// Init sets defaults and binds environment variables. STORE_MODE selects the
// adapter implementation: "postgres" or "sample" (the in-memory fixture
// dataset used when no store is available).
func Init() {
	viper.SetDefault("app.port", ":8080")
	viper.SetDefault("app.read_timeout", 10*time.Second)
	viper.SetDefault("app.write_timeout", 10*time.Second)
	viper.SetDefault("app.shutdown_timeout", 5*time.Second)
	viper.SetDefault("store.mode", "postgres")

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("store.mode", "STORE_MODE")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("postgres.user", "POSTGRES_USER")
	viper.BindEnv("postgres.password", "POSTGRES_PASSWORD")
	viper.BindEnv("postgres.host", "POSTGRES_HOST")
	viper.BindEnv("postgres.port", "POSTGRES_PORT")
	viper.BindEnv("postgres.db", "POSTGRES_DB")
	viper.BindEnv("postgres.sslmode", "POSTGRES_SSLMODE")

	viper.AutomaticEnv()
}

func Postgres() DBConfig {
	return DBConfig{
		Username: viper.GetString("postgres.user"),
		Password: viper.GetString("postgres.password"),
		Host:     viper.GetString("postgres.host"),
		Port:     viper.GetString("postgres.port"),
		DBName:   viper.GetString("postgres.db"),
		SSLMode:  viper.GetString("postgres.sslmode"),
	}
}
