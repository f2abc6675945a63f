package config

import (
	"os"

	"github.com/apex/log"
)

// DotenvPathEnvVar names the optional dotenv file loaded by MustLoadFromDotenv.
const DotenvPathEnvVar = "REALM_DOTENV_PATH"

var configer Configer = &DotenvConfig{}

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}

// MustLoadFromDotenv loads the file named by REALM_DOTENV_PATH (if set) into the
// environment and installs the result as the package configer. A file that is named
// but can't be read is fatal.
func MustLoadFromDotenv() Configer {
	c := NewDotenvConfig(os.Getenv(DotenvPathEnvVar))
	if err := c.Load(); err != nil {
		log.Fatalf("Failed loading configuration file %s: %s", c.DotenvPath, err)
	}

	SetConfig(c)
	return c
}

func LoadFromPath(path string) error {
	return configer.LoadFromPath(path)
}

func Load() error {
	return configer.Load()
}

func GetKey(key string) string {
	return configer.GetKey(key)
}

func MustGetKey(key string) string {
	return configer.MustGetKey(key)
}

func GetKeyWithDefault(key, defaultValue string) string {
	return configer.GetKeyWithDefault(key, defaultValue)
}

func GetIntKey(key string) int {
	return configer.GetIntKey(key)
}

func MustGetIntKey(key string) int {
	return configer.MustGetIntKey(key)
}

func GetIntKeyWithDefault(key string, defaultValue int) int {
	return configer.GetIntKeyWithDefault(key, defaultValue)
}

func GetBoolKeyWithDefault(key string, defaultValue bool) bool {
	return configer.GetBoolKeyWithDefault(key, defaultValue)
}
