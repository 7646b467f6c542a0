package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envType interface {
	string | int | bool | float64 | time.Duration
}

// GetEnv reads an environment variable and converts it to the type of the default value.
// An unset or empty variable yields the default; an unparsable one panics at startup.
func GetEnv[T envType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}

	value, err := parseEnv[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVarName, err))
	}
	return value
}

func GetRequiredEnv[T envType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}

	value, err := parseEnv[T](envValue)
	if err != nil {
		log.Fatalf("Environment variable %s is not valid: %s", envVarName, err)
	}
	return value
}

func parseEnv[T envType](raw string) (T, error) {
	var out T

	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return out, fmt.Errorf("'%s' is not an integer", raw)
		}
		*ptr = v
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return out, fmt.Errorf("'%s' cannot be converted to bool", raw)
		}
		*ptr = v
	case *float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, fmt.Errorf("'%s' is not a number", raw)
		}
		*ptr = v
	case *time.Duration:
		v, err := time.ParseDuration(raw)
		if err != nil {
			return out, fmt.Errorf("'%s' is not a duration", raw)
		}
		*ptr = v
	default:
		return out, fmt.Errorf("unsupported environment variable type %T", out)
	}

	return out, nil
}
