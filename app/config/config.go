package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration, loaded from config.yaml
// with SITE_-prefixed environment overrides.
type Config struct {
	Server struct {
		Listen string `mapstructure:"listen"`
	} `mapstructure:"server"`

	// Sources are the JSON feeds the site renders from. Each value is an
	// http(s) URL or a local file path.
	Sources struct {
		Events       string `mapstructure:"events"`
		Staff        string `mapstructure:"staff"`
		Titleholders string `mapstructure:"titleholders"`
		// CacheTTLSeconds bounds how stale a served page may be before a
		// request triggers a re-fetch. RefreshCron drives the background
		// refresh independently of traffic.
		CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
		RefreshCron     string `mapstructure:"refresh_cron"`
	} `mapstructure:"sources"`

	Site struct {
		// HorizonDays is the upcoming-events lookahead window.
		HorizonDays   int    `mapstructure:"horizon_days"`
		EventsPerPage int    `mapstructure:"events_per_page"`
		RankingsFile  string `mapstructure:"rankings_file"`
	} `mapstructure:"site"`

	Admin struct {
		// RefreshPasswordHash is a bcrypt hash; when set, POST /api/refresh
		// is enabled behind basic auth.
		RefreshUser         string `mapstructure:"refresh_user"`
		RefreshPasswordHash string `mapstructure:"refresh_password_hash"`
	} `mapstructure:"admin"`
}

// Load reads config.yaml (working directory or parent) merged with
// environment variables. Missing file is fine; defaults cover a local
// checkout with the data files in ./data.
func Load() *Config {
	viper.SetEnvPrefix("SITE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("server.listen")
	viper.BindEnv("sources.events")
	viper.BindEnv("sources.staff")
	viper.BindEnv("sources.titleholders")
	viper.BindEnv("sources.cache_ttl_seconds")
	viper.BindEnv("sources.refresh_cron")
	viper.BindEnv("site.horizon_days")
	viper.BindEnv("site.events_per_page")
	viper.BindEnv("site.rankings_file")
	viper.BindEnv("admin.refresh_user")
	viper.BindEnv("admin.refresh_password_hash")

	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("sources.events", "./data/events.json")
	viper.SetDefault("sources.staff", "./data/staff.json")
	viper.SetDefault("sources.titleholders", "./data/titleholders.json")
	viper.SetDefault("sources.cache_ttl_seconds", 300)
	viper.SetDefault("sources.refresh_cron", "@every 15m")
	viper.SetDefault("site.horizon_days", 31)
	viper.SetDefault("site.events_per_page", 8)
	viper.SetDefault("site.rankings_file", "./app/config/rankings.yaml")
	viper.SetDefault("admin.refresh_user", "admin")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: config error: %s", err)
		} else {
			log.Println("config.yaml not found, using defaults and environment")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
	return &cfg
}
