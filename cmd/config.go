package cmd

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SeedDemo   bool

	// Optional collaborators; empty values disable them.
	RedisAddr      string
	KafkaHost      string
	KafkaTurnTopic string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIModel    string

	VocabularyPath string
	SessionMaxIdle time.Duration
	ReplyTimeout   time.Duration
	OrderCacheTTL  time.Duration
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// KafkaBrokers splits the comma-separated broker list.
func (c Config) KafkaBrokers() []string {
	if c.KafkaHost == "" {
		return nil
	}
	brokers := strings.Split(c.KafkaHost, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}
