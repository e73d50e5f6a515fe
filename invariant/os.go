package invariant

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// ErrNotPointer is returned by SetConfigFromEnvVars when its argument is
// not a pointer to a struct.
var ErrNotPointer = errors.New("config must be a pointer to a struct")

// GetenvOrDefault returns the value of key, or defaultValue when the
// variable is unset or blank.
func GetenvOrDefault(key, defaultValue string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}

	return v
}

// GetenvBoolOrDefault parses key as a bool. Missing or invalid values yield
// defaultValue.
func GetenvBoolOrDefault(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}

	return v
}

// GetenvIntOrDefault parses key as a base-10 integer. Missing or invalid
// values yield defaultValue.
func GetenvIntOrDefault(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil {
		return defaultValue
	}

	return v
}

// SetConfigFromEnvVars fills the fields of the struct s points to from the
// environment variables named in their `env` tags. String, bool and
// integer fields are supported; a missing variable sets the zero value.
//
//	type Config struct {
//		Color string `env:"INVARIANT_COLOR"`
//	}
func SetConfigFromEnvVars(s any) error {
	v := reflect.ValueOf(s)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrNotPointer
	}

	e := v.Elem()
	t := e.Type()

	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("env")
		if !ok || tag == "" {
			continue
		}

		field := e.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(GetenvOrDefault(tag, ""))
		case reflect.Bool:
			field.SetBool(GetenvBoolOrDefault(tag, false))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := GetenvIntOrDefault(tag, 0)
			if field.OverflowInt(n) {
				return fmt.Errorf("env %s: value %d overflows %s", tag, n, field.Type())
			}

			field.SetInt(n)
		default:
			return fmt.Errorf("env %s: unsupported field type %s", tag, field.Type())
		}
	}

	return nil
}
