package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// MemoryConfig holds JSON-file storage backend settings.
type MemoryConfig struct {
	ComponentsFile string `json:"componentsFile" mapstructure:"componentsFile"`
	BuildsFile     string `json:"buildsFile" mapstructure:"buildsFile"`
}

// SetDefaults registers default values for every key. Called by Load, and
// directly by tests that skip the config file.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./rotorbenchlogs")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.componentsFile", "./data/components.json")
	viper.SetDefault("storage.memory.buildsFile", "./data/builds.json")
	viper.SetDefault("storage.sqlitePath", "./rotorbench.db")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "rotorbench")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "rotorbench-metrics")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("worker.count", 4)
}

// Load reads configuration from a JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName("rotorbench.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// Memory returns the JSON-file backend settings.
func Memory() MemoryConfig {
	return MemoryConfig{
		ComponentsFile: viper.GetString("storage.memory.componentsFile"),
		BuildsFile:     viper.GetString("storage.memory.buildsFile"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
