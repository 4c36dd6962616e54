package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// applyEnvOverrides walks the config sections and replaces every field whose env tag
// names a variable that is set. Errors name the yaml key, e.g. database.max_open_conns.
func applyEnvOverrides(cfg *Config) error {
	return overrideSection(reflect.ValueOf(cfg).Elem(), "")
}

func overrideSection(section reflect.Value, path string) error {
	typ := section.Type()

	for i := 0; i < section.NumField(); i++ {
		field := section.Field(i)
		fieldType := typ.Field(i)
		key := yamlKey(fieldType, path)

		if field.Kind() == reflect.Struct {
			if err := overrideSection(field, key); err != nil {
				return err
			}
			continue
		}

		envName := fieldType.Tag.Get("env")
		if envName == "" {
			continue
		}
		value, ok := os.LookupEnv(envName)
		if !ok {
			continue
		}

		if err := setField(field, value); err != nil {
			return fmt.Errorf("%s: %s=%q: %w", key, envName, value, err)
		}
	}

	return nil
}

func yamlKey(field reflect.StructField, parent string) string {
	name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// setField handles the field kinds Config uses; durations are kept as strings and
// validated by validateConfig.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer")
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid boolean")
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}
	return nil
}
