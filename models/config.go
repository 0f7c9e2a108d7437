package models

type ScanConfig struct {
	RootPaths    []string `mapstructure:"root_paths"`
	ExcludePaths []string `mapstructure:"exclude_paths"`
	Workers      int      `mapstructure:"workers"` // 0 = auto (CPU * 2)
	MaxFiles     int64    `mapstructure:"max_files"`
}

type SearchConfig struct {
	MaxResults      int                `mapstructure:"max_results"`
	MaxContentBytes int64              `mapstructure:"max_content_bytes"`
	LargeFileBytes  int64              `mapstructure:"large_file_bytes"`
	SmallFileBytes  int64              `mapstructure:"small_file_bytes"`
	RecentDays      int                `mapstructure:"recent_days"`
	OldDays         int                `mapstructure:"old_days"`
	Weights         map[string]float64 `mapstructure:"weights"`
}

type HistoryConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Search  SearchConfig  `mapstructure:"search"`
	History HistoryConfig `mapstructure:"history"`
}
