package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

// DSN is the key/value form accepted by the gorm postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// URL is the postgres:// form used by golang-migrate.
func (c DBConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type LeaveConfig struct {
	DefaultAnnual int
	DefaultSick   int
}

type ContractConfig struct {
	SweepInterval time.Duration
	AutoRenew     bool
}

type Config struct {
	Environment        string
	HTTP               HTTPConfig
	DB                 DBConfig
	RedisAddr          string
	KafkaBroker        string
	JWTSecret          string
	OutboxPollInterval time.Duration
	RateLimit          RateLimitConfig
	Leave              LeaveConfig
	Contract           ContractConfig
}

// Load reads configuration from the environment (and an optional app.env file).
// Every key has a default so local runs only need the DB and Redis settings.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Port:         v.GetString("HTTP_PORT"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
		},
		DB: DBConfig{
			Host:       v.GetString("DB_HOST"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			Port:       v.GetString("DB_PORT"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			MaxRetries: v.GetInt("DB_MAX_RETRIES"),
		},
		RedisAddr:          v.GetString("REDIS_ADDR"),
		KafkaBroker:        v.GetString("KAFKA_BROKER"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		OutboxPollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Leave: LeaveConfig{
			DefaultAnnual: v.GetInt("LEAVE_DEFAULT_ANNUAL"),
			DefaultSick:   v.GetInt("LEAVE_DEFAULT_SICK"),
		},
		Contract: ContractConfig{
			SweepInterval: v.GetDuration("CONTRACT_SWEEP_INTERVAL"),
			AutoRenew:     v.GetBool("CONTRACT_AUTO_RENEW"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "3000")
	v.SetDefault("HTTP_READ_TIMEOUT", 5*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 5)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("OUTBOX_POLL_INTERVAL", 3*time.Second)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("LEAVE_DEFAULT_ANNUAL", 25)
	v.SetDefault("LEAVE_DEFAULT_SICK", 10)
	v.SetDefault("CONTRACT_SWEEP_INTERVAL", 24*time.Hour)
	v.SetDefault("CONTRACT_AUTO_RENEW", true)
}
