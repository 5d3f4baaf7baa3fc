package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	// Peer is the client-side tuning for one remote collaborator.
	Peer struct {
		BaseURL          string
		Timeout          time.Duration
		Retries          int
		BreakerThreshold int
		BreakerCooldown  time.Duration
	}
	Peers struct {
		Identity   Peer
		Consulting Peer
		Admin      Peer
	}

	Config struct {
		App   APP
		DB    DB
		MQ    MQ
		Peers Peers
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func loadPeer(urlKey string) Peer {
	return Peer{
		BaseURL:          getEnv(urlKey, ""),
		Timeout:          getEnvDuration("PEER_HTTP_TIMEOUT", 5*time.Second),
		Retries:          getEnvInt("PEER_RETRIES", 2),
		BreakerThreshold: getEnvInt("PEER_BREAKER_THRESHOLD", 5),
		BreakerCooldown:  getEnvDuration("PEER_BREAKER_COOLDOWN", 30*time.Second),
	}
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", ""),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", ""),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", ""),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", ""),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", ""),
	}
	peers := Peers{
		Identity:   loadPeer("IDENTITY_SERVICE_URL"),
		Consulting: loadPeer("CONSULTING_SERVICE_URL"),
		Admin:      loadPeer("ADMIN_SERVICE_URL"),
	}

	return Config{
		App:   app,
		DB:    db,
		MQ:    mq,
		Peers: peers,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
