package discord

// Access decides who may run which subcommand, and where
type Access struct {
	channels map[string]struct{}
	admins   map[string]struct{}
}

// NewAccess creates the access rules. An empty channel list allows every channel.
func NewAccess(allowedChannels, adminIDs []string) *Access {
	return &Access{
		channels: toSet(allowedChannels),
		admins:   toSet(adminIDs),
	}
}

// ChannelAllowed reports whether the bot plays in the channel
func (a *Access) ChannelAllowed(channelID string) bool {
	if len(a.channels) == 0 {
		return true
	}
	_, ok := a.channels[channelID]
	return ok
}

// IsAdmin reports whether the user may run the admin subcommands
func (a *Access) IsAdmin(userID string) bool {
	_, ok := a.admins[userID]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
