package main

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordNotifier pushes operator alerts to a configured channel. Messages
// queue through a buffered channel so a slow Discord API never touches the
// proxy hot path.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
	queue     chan string
	done      chan struct{}
}

func NewDiscordNotifier(token, channelID string) (*DiscordNotifier, error) {
	if token == "" || channelID == "" {
		return nil, nil
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("discord gateway: %w", err)
	}

	n := &DiscordNotifier{
		session:   session,
		channelID: channelID,
		queue:     make(chan string, 64),
		done:      make(chan struct{}),
	}
	go n.sender()
	logger.Info("discord notifications enabled", "channel", channelID)
	return n, nil
}

func (n *DiscordNotifier) sender() {
	defer close(n.done)
	for msg := range n.queue {
		if _, err := n.session.ChannelMessageSend(n.channelID, msg); err != nil {
			logger.Warn("discord send failed", "error", err)
		}
	}
}

func (n *DiscordNotifier) Notify(msg string) {
	if n == nil {
		return
	}
	select {
	case n.queue <- msg:
	default:
		logger.Debug("discord queue full, dropping notification")
	}
}

// PoolTransition formats a health edge for the channel. Wired as the health
// monitor's transition hook.
func (n *DiscordNotifier) PoolTransition(pool PoolDescriptor, healthy bool, detail string) {
	if n == nil {
		return
	}
	if healthy {
		n.Notify(fmt.Sprintf(":green_circle: pool **%s** (%s) is back up", pool.Name, pool.Addr()))
		return
	}
	n.Notify(fmt.Sprintf(":red_circle: pool **%s** (%s) is down: %s", pool.Name, pool.Addr(), detail))
}

func (n *DiscordNotifier) Close() {
	if n == nil {
		return
	}
	close(n.queue)
	<-n.done
	_ = n.session.Close()
}
