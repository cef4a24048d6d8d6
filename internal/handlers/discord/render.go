package discord

import (
	"fmt"

	"github.com/KirkDiggler/charades/internal/services/game"
	"github.com/KirkDiggler/charades/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen = 0x00ff00
	colorRed   = 0xff0000
	colorGold  = 0xffd700
)

// renderHelp builds the help embed
func renderHelp(output *messaging.GetHelpMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       output.Title,
		Description: output.Message,
		Color:       colorGreen,
	}
}

// renderHallOfFame builds the all-time scores embed, one field per player
func renderHallOfFame(output *game.GetHallOfFameOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Hall of fame",
		Color: colorGold,
	}

	if len(output.Entries) == 0 {
		embed.Description = "No finished games yet."
		return embed
	}

	for i, entry := range output.Entries {
		games := "games"
		if entry.GamesPlayed == 1 {
			games = "game"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%d. %s", i+1, entry.PlayerName),
			Value:  fmt.Sprintf("%d points in %d %s", entry.TotalScore, entry.GamesPlayed, games),
			Inline: false,
		})
	}

	return embed
}
