package alert

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// DiscordAlerter posts operational messages to a Discord channel. It
// implements notification.Alerter: sends are fire-and-forget and never
// surface errors to the caller.
type DiscordAlerter struct {
	discord   *discordgo.Session
	channelID string
}

func NewDiscordAlerter(botToken, channelID string) (*DiscordAlerter, error) {
	discord, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}

	return &DiscordAlerter{
		discord:   discord,
		channelID: channelID,
	}, nil
}

func (a *DiscordAlerter) Alert(ctx context.Context, message string) {
	go func() {
		_, err := a.discord.ChannelMessageSend(a.channelID, message)
		if err != nil {
			log.Error().Err(err).Msg("failed to send ops alert to Discord")
		}
	}()
}
