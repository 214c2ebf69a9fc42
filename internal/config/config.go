package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	RoomCodeLength int
	// ShuffleSeed fixes the random source for room codes and deals. Zero
	// means seed from the clock.
	ShuffleSeed int64
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load reads the configuration from the environment. Variables from the
// given .env files (or ./.env when none are named) fill in anything not
// already set; missing files are ignored.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)

	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":3001"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
		AllowedOrigins: getenvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RoomCodeLength: getenvInt("ROOM_CODE_LENGTH", 6),
		ShuffleSeed:    getenvInt64("SHUFFLE_SEED", 0),
	}
}
