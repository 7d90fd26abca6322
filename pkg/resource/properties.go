package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"go-taskflow/pkg/log"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads the .env file (ENV_FILE_PATH) into the process environment and then the
// application properties from the YAML file pointed by PROPERTIES_FILE_PATH.
// A missing file is not fatal: defaults registered through SetDefaults still apply.
func init() {
	envFile, ok := os.LookupEnv("ENV_FILE_PATH")
	if !ok {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Fail to read env file %s: %v", envFile, err)
	}

	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = defaultPropertiesPath
	}
	if err := LoadFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("Properties file %s not found, using embedded defaults", path)
			return
		}
		log.Errorf("Fail to read properties: %v", err)
	}
}

// LoadFile merges the YAML file at path over the current properties.
func LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Load(bytes.NewReader(content))
}

// Load merges YAML properties read from r over the current properties.
func Load(r io.Reader) error {
	settings, err := readSettings(r)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	return properties.MergeConfigMap(settings)
}

// SetDefaults registers YAML properties read from r as defaults.
// Values loaded through Load or LoadFile take precedence over them.
func SetDefaults(r io.Reader) error {
	settings, err := readSettings(r)
	if err != nil {
		return err
	}

	flat := make(map[string]any)
	flatten("", settings, flat)

	mu.Lock()
	defer mu.Unlock()
	for key, value := range flat {
		properties.SetDefault(key, value)
	}
	return nil
}

// Set overrides a single property, mostly used by CLI flags and tests.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	properties.Set(key, value)
}

func readSettings(r io.Reader) (map[string]any, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("fail to parse properties: %w", err)
	}
	settings := v.AllSettings()
	resolveEnvVariables(settings)
	return settings, nil
}

// resolveEnvVariables walks the settings tree replacing ${ENV:default} references in place
func resolveEnvVariables(data map[string]any) {
	for key, value := range data {
		switch v := value.(type) {
		case string:
			data[key] = resolveEnvVariable(v)
		case map[string]any:
			resolveEnvVariables(v)
		}
	}
}

func flatten(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flatten(fullKey, nested, result)
			continue
		}
		result[fullKey] = value
	}
}

// resolveEnvVariable expands every ${NAME:default} occurrence of value
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func Get(key string) any {
	mu.RLock()
	defer mu.RUnlock()
	return properties.Get(key)
}

func IsSet(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return properties.IsSet(key)
}

func GetString(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetString(key)
}

func GetBool(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetInt(key)
}

func GetInt64(key string) int64 {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetInt64(key)
}

func GetFloat64(key string) float64 {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	mu.RLock()
	defer mu.RUnlock()
	return properties.GetStringSlice(key)
}
