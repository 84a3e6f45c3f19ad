package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// StoreBackend selects the session draft store: memory, redis, postgres.
	StoreBackend string
	RedisURL     string
	PostgresDSN  string
	DraftTTL     time.Duration

	// KafkaBrokers enables the Kafka confirmation publisher when non-empty;
	// otherwise confirmations go to the log.
	KafkaBrokers []string
	ConfirmTopic string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("RAILBOOK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	backend := os.Getenv("RAILBOOK_STORE")
	if backend == "" {
		backend = "memory"
	}

	ttl := 30 * time.Minute
	if raw := os.Getenv("RAILBOOK_DRAFT_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	var brokers []string
	if raw := os.Getenv("RAILBOOK_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}
	topic := os.Getenv("RAILBOOK_CONFIRM_TOPIC")
	if topic == "" {
		topic = "booking.confirmations"
	}

	return Server{
		Addr:         addr,
		StoreBackend: backend,
		RedisURL:     os.Getenv("RAILBOOK_REDIS_URL"),
		PostgresDSN:  os.Getenv("RAILBOOK_POSTGRES_DSN"),
		DraftTTL:     ttl,
		KafkaBrokers: brokers,
		ConfirmTopic: topic,
	}
}
