package utils

import (
	"log"
	"os"
	"strconv"
	"time"
)

// lookupEnv returns parse(value) for a set variable, and defaultValue when the
// variable is unset or fails to parse.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	parsed, err := parse(value)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(value string) (string, error) { return value, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvDuration accepts Go durations ("15s", "1m") and bare integers, read as seconds.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return lookupEnv(key, defaultValue, func(value string) (time.Duration, error) {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second, nil
		}
		return time.ParseDuration(value)
	})
}
