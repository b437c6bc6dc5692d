package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Data source and payment provider selectors.
const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"

	PaymentProviderFake        = "fake"
	PaymentProviderMercadoPago = "mercadopago"
)

// Server captures process-level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	DataSource      string
	DatabaseURL     string
	PaymentProvider string
	MercadoPago     MercadoPagoConfig
	Redis           RedisConfig
	Kafka           KafkaConfig
	ShutdownTimeout time.Duration
}

type MercadoPagoConfig struct {
	AccessToken string
	PayerEmail  string
}

// RedisConfig configures the kitchen monitor channel. An empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures payment reconciliation events. No brokers disables it.
type KafkaConfig struct {
	Brokers             []string
	ReconciliationTopic string
	ConsumerGroup       string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            getenv("CAFEPOS_ADDR", ":8080"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "json"),
		DataSource:      getenv("DATA_SOURCE", DataSourceMemory),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		PaymentProvider: getenv("PAYMENT_PROVIDER", PaymentProviderFake),
		MercadoPago: MercadoPagoConfig{
			AccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			PayerEmail:  os.Getenv("MERCADOPAGO_PAYER_EMAIL"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getenvInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getenvInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getenvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getenvDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getenvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:             splitList(os.Getenv("KAFKA_BROKERS")),
			ReconciliationTopic: getenv("RECONCILIATION_TOPIC", "cafepos.payment.reconciliation"),
			ConsumerGroup:       getenv("RECONCILIATION_GROUP", "cafepos-reconciler"),
		},
		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate fails fast on combinations that cannot start.
func (c Server) Validate() error {
	switch c.DataSource {
	case DataSourceMemory:
	case DataSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DATA_SOURCE=%s", DataSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}
	switch c.PaymentProvider {
	case PaymentProviderFake:
	case PaymentProviderMercadoPago:
		if c.MercadoPago.AccessToken == "" {
			return fmt.Errorf("MERCADOPAGO_ACCESS_TOKEN is required when PAYMENT_PROVIDER=%s", PaymentProviderMercadoPago)
		}
	default:
		return fmt.Errorf("unknown PAYMENT_PROVIDER %q", c.PaymentProvider)
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.ReconciliationTopic == "" {
		return fmt.Errorf("RECONCILIATION_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
