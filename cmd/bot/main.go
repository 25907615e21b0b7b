package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/faceit-map-stats/internal/adapters/discord"
	"github.com/jose-valero/faceit-map-stats/internal/app/service"
	"github.com/jose-valero/faceit-map-stats/internal/infra/config"
	"github.com/jose-valero/faceit-map-stats/internal/infra/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	closer := logging.MustCreateLogger(logging.Level(cfg.LogLevel), cfg.LogFile)
	defer closer()

	if err := cfg.Require("FACEIT_API_KEY", "DISCORD_BOT_TOKEN", "DISCORD_GUILD_ID"); err != nil {
		slog.Error("config", logging.ErrAttr(err))
		os.Exit(1)
	}

	auth := strings.TrimSpace(cfg.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		slog.Error("discord session", logging.ErrAttr(err))
		os.Exit(1)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		slog.Error("discord open", logging.ErrAttr(err))
		os.Exit(1)
	}
	defer s.Close()
	slog.Info("connected", slog.String("user", s.State.User.Username), slog.String("id", s.State.User.ID))

	r := discordrouter.NewRouter(s, cfg.DiscordGuild, cfg.FaceitAPIKey, service.NewFaceitRunner(cfg))
	if err := r.Register(); err != nil {
		slog.Error("registrando comandos", logging.ErrAttr(err))
		os.Exit(1)
	}
	r.Handlers()
	slog.Info("comandos registrados", slog.String("guild", cfg.DiscordGuild))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
