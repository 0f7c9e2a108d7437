package app

import (
	"os"
	"path/filepath"

	"github.com/chuckfs/fileintel/models"

	"github.com/spf13/viper"
)

func setConfigDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("scan.root_paths", []string{
		filepath.Join(home, "Documents"),
		filepath.Join(home, "Pictures"),
		filepath.Join(home, "Downloads"),
		filepath.Join(home, "Desktop"),
		filepath.Join(home, "Music"),
		filepath.Join(home, "Videos"),
	})
	v.SetDefault("scan.workers", 0)
	v.SetDefault("scan.max_files", 0)
	v.SetDefault("search.max_results", 20)
	v.SetDefault("search.max_content_bytes", 1024*1024)
	v.SetDefault("search.large_file_bytes", 10*1024*1024)
	v.SetDefault("search.small_file_bytes", 100*1024)
	v.SetDefault("search.recent_days", 7)
	v.SetDefault("search.old_days", 90)
	v.SetDefault("search.weights", map[string]float64{
		"filename": 1.0,
		"content":  0.7,
		"type":     0.9,
		"date":     0.4,
		"size":     0.5,
	})
	v.SetDefault("history.db_path", "data/history.db")
}

func LoadConfig(path string) (*models.AppConfig, error) {
	v := viper.New()
	setConfigDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfig returns the built-in configuration used when no config
// file is given.
func DefaultConfig() *models.AppConfig {
	v := viper.New()
	setConfigDefaults(v)

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return &models.AppConfig{}
	}
	return &cfg
}
