package config

import "time"

// Config holds all application configuration.
type Config struct {
	Output    Output    `mapstructure:"output"`
	Fetch     Fetch     `mapstructure:"fetch"`
	Translate Translate `mapstructure:"translate"`
	Schedule  Schedule  `mapstructure:"schedule"`
	Storage   Storage   `mapstructure:"storage"`
}

// Output holds the snapshot artifact location.
type Output struct {
	Path string `mapstructure:"path"`
}

// Fetch holds shared fetch behavior for all sources.
type Fetch struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// Translate holds the language pair for Italian-language feeds.
type Translate struct {
	Enabled    bool   `mapstructure:"enabled"`
	SourceLang string `mapstructure:"source_lang"`
	TargetLang string `mapstructure:"target_lang"`
}

// Schedule holds the cron spec used by the watch command.
type Schedule struct {
	CronSpec string `mapstructure:"cron_spec"`
}

// Storage holds optional S3/MinIO publication settings.
type Storage struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	Bucket          string `mapstructure:"bucket"`
	ObjectName      string `mapstructure:"object_name"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Output: Output{
			Path: "data/news.json",
		},
		Fetch: Fetch{
			Timeout:   30 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		},
		Translate: Translate{
			Enabled:    true,
			SourceLang: "it",
			TargetLang: "en",
		},
		Schedule: Schedule{
			CronSpec: "*/30 * * * *",
		},
		Storage: Storage{
			Enabled:    false, // local file stays the source of truth
			ObjectName: "data/news.json",
		},
	}
}
