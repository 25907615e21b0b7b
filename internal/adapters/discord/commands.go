package discord

import "github.com/bwmarrin/discordgo"

const cmdMapStats = "mapstats"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        cmdMapStats,
		Description: "FACEIT: mapas jugados por un equipo en los últimos 3 meses",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "team",
			Description: "ID del equipo en FACEIT",
			Required:    true,
		}},
	},
	{
		Name:        "ping",
		Description: "¿Está vivo el bot?",
	},
}
