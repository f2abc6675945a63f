package config

import (
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/subosito/gotenv"
)

// DotenvConfig reads its values from the process environment. A dotenv file, when
// given, is loaded into the environment first; values already set in the
// environment win.
type DotenvConfig struct {
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{DotenvPath: path}
}

func (c *DotenvConfig) LoadFromPath(path string) error {
	c.DotenvPath = path
	return c.Load()
}

func (c *DotenvConfig) Load() error {
	if c.DotenvPath == "" {
		return nil
	}

	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) GetKey(key string) string {
	return os.Getenv(key)
}

func (c *DotenvConfig) MustGetKey(key string) string {
	val := c.GetKey(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (c *DotenvConfig) GetKeyWithDefault(key, defaultValue string) string {
	return withDefault(c.GetKey(key), defaultValue)
}

func (c *DotenvConfig) GetIntKey(key string) int {
	return toInt(c.GetKey(key), 0)
}

func (c *DotenvConfig) MustGetIntKey(key string) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		log.Fatalf("Required config key either doesn't exist or isn't an int: '%s': %s", key, err)
	}

	return intVal
}

func (c *DotenvConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return toInt(c.GetKey(key), defaultValue)
}

func (c *DotenvConfig) GetBoolKeyWithDefault(key string, defaultValue bool) bool {
	return toBool(c.GetKey(key), defaultValue)
}

func withDefault(val, defaultValue string) string {
	if val == "" {
		return defaultValue
	}

	return val
}

func toInt(val string, defaultValue int) int {
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func toBool(val string, defaultValue bool) bool {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}

	return b
}
