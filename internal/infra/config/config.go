package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	FaceitAPIKey      string
	FaceitBaseURL     string
	FaceitGame        string
	HistoryWindowDays int
	HTTPAddr          string // opcional, default :8080

	LogLevel string
	LogFile  string

	// sólo para cmd/bot
	DiscordToken string
	DiscordGuild string
}

// Load lee todo del entorno. La API key no es obligatoria acá: cada superficie decide qué hacer si falta.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("FACEIT_BASE_URL", "https://open.faceit.com/data/v4")
	v.SetDefault("FACEIT_GAME", "cs2")
	v.SetDefault("HISTORY_WINDOW_DAYS", 90)
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")

	get := func(k string) string { return strings.TrimSpace(v.GetString(k)) }

	cfg := Config{
		FaceitAPIKey:      get("FACEIT_API_KEY"),
		FaceitBaseURL:     get("FACEIT_BASE_URL"),
		FaceitGame:        get("FACEIT_GAME"),
		HistoryWindowDays: v.GetInt("HISTORY_WINDOW_DAYS"),
		HTTPAddr:          get("HTTP_ADDR"),
		LogLevel:          get("LOG_LEVEL"),
		LogFile:           get("LOG_FILE"),
		DiscordToken:      get("DISCORD_BOT_TOKEN"),
		DiscordGuild:      get("DISCORD_GUILD_ID"),
	}
	if cfg.HistoryWindowDays <= 0 {
		cfg.HistoryWindowDays = 90
	}
	return cfg
}

func (c Config) HistoryWindow() time.Duration {
	return time.Duration(c.HistoryWindowDays) * 24 * time.Hour
}

// Require devuelve error con las variables faltantes.
func (c Config) Require(keys ...string) error {
	vals := map[string]string{
		"FACEIT_API_KEY":    c.FaceitAPIKey,
		"DISCORD_BOT_TOKEN": c.DiscordToken,
		"DISCORD_GUILD_ID":  c.DiscordGuild,
	}
	var missing []string
	for _, k := range keys {
		if vals[k] == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("faltante env %s", strings.Join(missing, ", "))
	}
	return nil
}
