package cfg

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

type LookupEnv func(key string) (string, bool)

var DefaultEnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

//go:generate go run github.com/vektra/mockery/v2 --name Config
type Config interface {
	AllSettings() map[string]any
	Get(key string, optionalDefault ...any) any
	GetBool(key string, optionalDefault ...bool) bool
	GetDuration(key string, optionalDefault ...time.Duration) time.Duration
	GetInt(key string, optionalDefault ...int) int
	GetString(key string, optionalDefault ...string) string
	IsSet(key string) bool
	UnmarshalKey(key string, output any) error
}

type config struct {
	lookupEnv LookupEnv
	settings  map[string]any
}

func New(msis ...map[string]any) Config {
	return NewWithInterfaces(os.LookupEnv, msis...)
}

func NewWithInterfaces(lookupEnv LookupEnv, msis ...map[string]any) Config {
	settings := map[string]any{}

	for _, msi := range msis {
		settings = mergeMaps(settings, msi)
	}

	return &config{
		lookupEnv: lookupEnv,
		settings:  settings,
	}
}

func (c *config) AllSettings() map[string]any {
	return c.settings
}

func (c *config) Get(key string, optionalDefault ...any) any {
	if value, ok := c.get(key); ok {
		return value
	}

	if len(optionalDefault) > 0 {
		return optionalDefault[0]
	}

	return nil
}

func (c *config) GetBool(key string, optionalDefault ...bool) bool {
	if value, ok := c.get(key); ok {
		return cast.ToBool(value)
	}

	if len(optionalDefault) > 0 {
		return optionalDefault[0]
	}

	return false
}

func (c *config) GetDuration(key string, optionalDefault ...time.Duration) time.Duration {
	if value, ok := c.get(key); ok {
		return cast.ToDuration(value)
	}

	if len(optionalDefault) > 0 {
		return optionalDefault[0]
	}

	return 0
}

func (c *config) GetInt(key string, optionalDefault ...int) int {
	if value, ok := c.get(key); ok {
		return cast.ToInt(value)
	}

	if len(optionalDefault) > 0 {
		return optionalDefault[0]
	}

	return 0
}

func (c *config) GetString(key string, optionalDefault ...string) string {
	if value, ok := c.get(key); ok {
		return cast.ToString(value)
	}

	if len(optionalDefault) > 0 {
		return optionalDefault[0]
	}

	return ""
}

func (c *config) IsSet(key string) bool {
	_, ok := c.get(key)

	return ok
}

// UnmarshalKey decodes the settings below the given key into the output struct.
// Struct fields are matched by their cfg tag, missing values fall back to the
// default tag and environment variables take precedence over both.
func (c *config) UnmarshalKey(key string, output any) error {
	settings := map[string]any{}

	if value, ok := c.get(key); ok {
		msi, err := cast.ToStringMapE(value)
		if err != nil {
			return fmt.Errorf("can not unmarshal key %s: value is not a map but %T", key, value)
		}

		settings = mergeMaps(map[string]any{}, msi)
	}

	if err := applyStructDefaults(settings, output); err != nil {
		return fmt.Errorf("can not apply defaults for key %s: %w", key, err)
	}

	c.applyEnvOverrides(key, settings, output)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           output,
		TagName:          "cfg",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("can not create decoder for key %s: %w", key, err)
	}

	if err := decoder.Decode(settings); err != nil {
		return fmt.Errorf("can not decode settings for key %s: %w", key, err)
	}

	return nil
}

func (c *config) get(key string) (any, bool) {
	if value, ok := c.lookupEnv(c.resolveEnvKey(key)); ok {
		return value, true
	}

	var current any = c.settings

	for _, elem := range strings.Split(key, ".") {
		msi, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		if current, ok = msi[elem]; !ok {
			return nil, false
		}
	}

	return current, true
}

func (c *config) resolveEnvKey(key string) string {
	return strings.ToUpper(DefaultEnvKeyReplacer.Replace(key))
}

func (c *config) applyEnvOverrides(key string, settings map[string]any, output any) {
	for _, field := range structFields(output) {
		cfgKey, ok := field.Tag.Lookup("cfg")
		if !ok {
			continue
		}

		if value, ok := c.lookupEnv(c.resolveEnvKey(fmt.Sprintf("%s.%s", key, cfgKey))); ok {
			settings[cfgKey] = value
		}
	}
}

func applyStructDefaults(settings map[string]any, output any) error {
	for _, field := range structFields(output) {
		cfgKey, ok := field.Tag.Lookup("cfg")
		if !ok {
			continue
		}

		defaultValue, ok := field.Tag.Lookup("default")
		if !ok {
			continue
		}

		if _, ok := settings[cfgKey]; !ok {
			settings[cfgKey] = defaultValue
		}
	}

	return nil
}

func structFields(output any) []reflect.StructField {
	t := reflect.TypeOf(output)

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields = append(fields, t.Field(i))
	}

	return fields
}

func mergeMaps(target map[string]any, source map[string]any) map[string]any {
	for key, value := range source {
		sourceMsi, sourceOk := value.(map[string]any)
		targetMsi, targetOk := target[key].(map[string]any)

		if sourceOk && targetOk {
			target[key] = mergeMaps(targetMsi, sourceMsi)

			continue
		}

		target[key] = value
	}

	return target
}
