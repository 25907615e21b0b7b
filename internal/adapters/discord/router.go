package discord

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

// Los tokens de interacción duran 15 minutos; dejamos margen para responder.
const runTimeout = 12 * time.Minute

// StatsRunner lo implementa service.Runner.
type StatsRunner interface {
	Run(ctx context.Context, teamID, apiKey string) (domain.Report, error)
}

type Router struct {
	s       *discordgo.Session
	guildID string
	apiKey  string
	stats   StatsRunner
	limiter *userLimiter
}

func NewRouter(s *discordgo.Session, guildID, apiKey string, stats StatsRunner) *Router {
	return &Router{
		s:       s,
		guildID: guildID,
		apiKey:  apiKey,
		stats:   stats,
		limiter: newUserLimiter(2 * time.Minute),
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		data := ic.ApplicationCommandData()
		uid := userID(ic)
		slog.Info("slash", slog.String("cmd", data.Name), slog.String("by", uid), slog.String("guild", ic.GuildID))

		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic in slash", slog.String("cmd", data.Name), slog.Any("panic", rec))
				ReplyEphemeral(s, ic, "⚠️ Ocurrió un error inesperado.")
			}
		}()

		switch data.Name {
		case "ping":
			_ = SendEphemeral(s, ic, "🏓 pong")
		case cmdMapStats:
			r.handleMapStats(s, ic, uid)
		}
	})
}

func (r *Router) handleMapStats(s *discordgo.Session, ic *discordgo.InteractionCreate, uid string) {
	teamID, _ := optStr(ic, "team")
	if teamID == "" {
		_ = SendEphemeral(s, ic, "Usa `/mapstats team:<id del equipo>`.")
		return
	}
	if ok, wait := r.limiter.Allow(uid); !ok {
		_ = SendEphemeral(s, ic, "⏳ Ya pediste un reporte hace poco. Probá de nuevo en "+fmtRemain(wait)+".")
		return
	}

	_ = DeferEphemeral(s, ic)
	done := step("mapstats " + teamID)
	defer done()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	rep, err := r.stats.Run(ctx, teamID, r.apiKey)
	if err != nil {
		ReplyEphemeral(s, ic, failureMessage(err))
		return
	}
	ReplyEphemeral(s, ic, "", reportEmbed(rep))
}

func failureMessage(err error) string {
	var svcErr *domain.ServiceError
	if errors.As(err, &svcErr) {
		return "⚠️ No pude obtener el equipo: " + svcErr.Message
	}
	return "⚠️ No pude calcular las estadísticas: " + err.Error()
}
