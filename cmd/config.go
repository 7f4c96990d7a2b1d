package cmd

import "fmt"

// Config carries everything the process needs from the environment: the two
// bot tokens, database and Redis coordinates, and the tuning knobs for
// session storage and assignment strategy.
type Config struct {
	ClientBotToken  string
	CourierBotToken string
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	SessionBackend  string
	RedisAddr       string
	AssignStrategy  string
}

// Session backend selectors for Config.SessionBackend.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Assignment strategy selectors for Config.AssignStrategy.
const (
	AssignStrategyFirst   = "first"
	AssignStrategyNearest = "nearest"
)

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
