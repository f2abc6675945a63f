package config

import (
	"strconv"
	"sync"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// MapConfig holds values set in code, such as command line flags. Keys it doesn't
// hold are looked up in the fallback Configer, if there is one.
type MapConfig struct {
	mu       sync.RWMutex
	values   map[string]string
	fallback Configer
}

func NewMapConfig(entries map[string]string) *MapConfig {
	values := make(map[string]string, len(entries))
	for key, value := range entries {
		values[key] = value
	}

	return &MapConfig{values: values}
}

// WithFallback layers c over fallback.
func (c *MapConfig) WithFallback(fallback Configer) *MapConfig {
	c.fallback = fallback
	return c
}

func (c *MapConfig) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

func (c *MapConfig) LoadFromPath(path string) error {
	if c.fallback == nil {
		return errors.Errorf("MapConfig has nothing to load %s into", path)
	}

	return c.fallback.LoadFromPath(path)
}

func (c *MapConfig) Load() error {
	if c.fallback == nil {
		return nil
	}

	return c.fallback.Load()
}

func (c *MapConfig) GetKey(key string) string {
	c.mu.RLock()
	value, ok := c.values[key]
	c.mu.RUnlock()

	if !ok && c.fallback != nil {
		return c.fallback.GetKey(key)
	}

	return value
}

func (c *MapConfig) MustGetKey(key string) string {
	val := c.GetKey(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (c *MapConfig) GetKeyWithDefault(key, defaultValue string) string {
	return withDefault(c.GetKey(key), defaultValue)
}

func (c *MapConfig) GetIntKey(key string) int {
	return toInt(c.GetKey(key), 0)
}

func (c *MapConfig) MustGetIntKey(key string) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		log.Fatalf("Required config key either doesn't exist or isn't an int: '%s': %s", key, err)
	}

	return intVal
}

func (c *MapConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return toInt(c.GetKey(key), defaultValue)
}

func (c *MapConfig) GetBoolKeyWithDefault(key string, defaultValue bool) bool {
	return toBool(c.GetKey(key), defaultValue)
}
