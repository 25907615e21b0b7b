package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/faceit-map-stats/internal/domain"
)

const (
	embedColor    = 0xFF5500
	maxMapsShown  = 8
	maxSeriesShow = 5
)

var resultIcon = map[string]string{
	domain.ResultWin:  "🟢",
	domain.ResultLoss: "🔴",
}

func seriesIcon(result string) string {
	switch result {
	case "Win":
		return "✅"
	case "Loss":
		return "❌"
	default:
		return "➖"
	}
}

// reportEmbed resume el reporte: top mapas y últimas series.
func reportEmbed(rep domain.Report) *discordgo.MessageEmbed {
	name := rep.TeamName
	if name == "" {
		name = rep.TeamID
	}
	e := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 %s — mapas", name),
		URL:   faceitTeamURL(rep.TeamID),
		Color: embedColor,
		Description: fmt.Sprintf("**%d** series · **%d** mapas · %s → %s",
			rep.TotalSeries, rep.TotalMatches, shortDate(rep.Period.From), shortDate(rep.Period.To)),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("matches %d · series %d · del equipo %d",
				rep.Diagnostics.AllMatchesFound, rep.Diagnostics.SeriesFound, rep.Diagnostics.TeamSeriesFound),
		},
	}
	if rep.Avatar != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: rep.Avatar}
	}

	if len(rep.MapStatistics) == 0 {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Mapas", Value: "Sin series del roster en el período."})
		return e
	}

	var maps strings.Builder
	for i, st := range rep.MapStatistics {
		if i == maxMapsShown {
			fmt.Fprintf(&maps, "… y %d más", len(rep.MapStatistics)-maxMapsShown)
			break
		}
		fmt.Fprintf(&maps, "`%-12s` %dW %dL · **%d%%** (%d)\n", st.Map, st.Wins, st.Losses, st.WinRate, st.TotalMatches)
	}
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Mapas", Value: maps.String()})

	var recent strings.Builder
	for i, sr := range rep.RecentSeries {
		if i == maxSeriesShow {
			break
		}
		parts := make([]string, 0, len(sr.Maps))
		for _, m := range sr.Maps {
			icon := resultIcon[m.Result]
			if icon == "" {
				icon = "⚪"
			}
			parts = append(parts, icon+" "+m.Map)
		}
		fmt.Fprintf(&recent, "%s [%s](%s) %s\n", seriesIcon(sr.SeriesResult), shortDate(sr.Date), faceitMatchURL(sr.ID), strings.Join(parts, " · "))
	}
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Últimas series", Value: recent.String()})
	return e
}

func shortDate(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}
