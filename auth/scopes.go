package auth

// Scope is an OAuth scope name as Twitch spells it.
type Scope string

const (
	AnalyticsReadExtensions        Scope = "analytics:read:extensions"
	AnalyticsReadGames             Scope = "analytics:read:games"
	BitsRead                       Scope = "bits:read"
	ChannelBot                     Scope = "channel:bot"
	ChannelManageAds               Scope = "channel:manage:ads"
	ChannelReadAds                 Scope = "channel:read:ads"
	ChannelManageBroadcast         Scope = "channel:manage:broadcast"
	ChannelReadCharity             Scope = "channel:read:charity"
	ChannelEditCommercial          Scope = "channel:edit:commercial"
	ChannelReadEditors             Scope = "channel:read:editors"
	ChannelManageExtensions        Scope = "channel:manage:extensions"
	ChannelReadGoals               Scope = "channel:read:goals"
	ChannelReadGuestStar           Scope = "channel:read:guest_star"
	ChannelManageGuestStar         Scope = "channel:manage:guest_star"
	ChannelReadHypeTrain           Scope = "channel:read:hype_train"
	ChannelManageModerators        Scope = "channel:manage:moderators"
	ChannelReadPolls               Scope = "channel:read:polls"
	ChannelManagePolls             Scope = "channel:manage:polls"
	ChannelReadPredictions         Scope = "channel:read:predictions"
	ChannelManagePredictions       Scope = "channel:manage:predictions"
	ChannelManageRaids             Scope = "channel:manage:raids"
	ChannelReadRedemptions         Scope = "channel:read:redemptions"
	ChannelManageRedemptions       Scope = "channel:manage:redemptions"
	ChannelManageSchedule          Scope = "channel:manage:schedule"
	ChannelReadStreamKey           Scope = "channel:read:stream_key"
	ChannelReadSubscriptions       Scope = "channel:read:subscriptions"
	ChannelManageVideos            Scope = "channel:manage:videos"
	ChannelReadVips                Scope = "channel:read:vips"
	ChannelManageVips              Scope = "channel:manage:vips"
	ClipsEdit                      Scope = "clips:edit"
	ModerationRead                 Scope = "moderation:read"
	ModeratorManageAnnouncements   Scope = "moderator:manage:announcements"
	ModeratorManageAutomod         Scope = "moderator:manage:automod"
	ModeratorReadAutomodSettings   Scope = "moderator:read:automod_settings"
	ModeratorManageAutomodSettings Scope = "moderator:manage:automod_settings"
	ModeratorReadBannedUsers       Scope = "moderator:read:banned_users"
	ModeratorManageBannedUsers     Scope = "moderator:manage:banned_users"
	ModeratorReadBlockedTerms      Scope = "moderator:read:blocked_terms"
	ModeratorReadChatMessages      Scope = "moderator:read:chat_messages"
	ModeratorManageBlockedTerms    Scope = "moderator:manage:blocked_terms"
	ModeratorManageChatMessages    Scope = "moderator:manage:chat_messages"
	ModeratorReadChatSettings      Scope = "moderator:read:chat_settings"
	ModeratorManageChatSettings    Scope = "moderator:manage:chat_settings"
	ModeratorReadChatters          Scope = "moderator:read:chatters"
	ModeratorReadFollowers         Scope = "moderator:read:followers"
	ModeratorReadGuestStar         Scope = "moderator:read:guest_star"
	ModeratorManageGuestStar       Scope = "moderator:manage:guest_star"
	ModeratorReadModerators        Scope = "moderator:read:moderators"
	ModeratorReadShieldMode        Scope = "moderator:read:shield_mode"
	ModeratorManageShieldMode      Scope = "moderator:manage:shield_mode"
	ModeratorReadShoutouts         Scope = "moderator:read:shoutouts"
	ModeratorManageShoutouts       Scope = "moderator:manage:shoutouts"
	ModeratorReadSuspiciousUsers   Scope = "moderator:read:suspicious_users"
	ModeratorReadUnbanRequests     Scope = "moderator:read:unban_requests"
	ModeratorManageUnbanRequests   Scope = "moderator:manage:unban_requests"
	ModeratorReadVips              Scope = "moderator:read:vips"
	ModeratorReadWarnings          Scope = "moderator:read:warnings"
	ModeratorManageWarnings        Scope = "moderator:manage:warnings"
	UserBot                        Scope = "user:bot"
	UserEdit                       Scope = "user:edit"
	UserEditBroadcast              Scope = "user:edit:broadcast"
	UserReadBlockedUsers           Scope = "user:read:blocked_users"
	UserManageBlockedUsers         Scope = "user:manage:blocked_users"
	UserReadBroadcast              Scope = "user:read:broadcast"
	UserReadChat                   Scope = "user:read:chat"
	UserManageChatColor            Scope = "user:manage:chat_color"
	UserReadEmail                  Scope = "user:read:email"
	UserReadEmotes                 Scope = "user:read:emotes"
	UserReadFollows                Scope = "user:read:follows"
	UserReadModeratedChannels      Scope = "user:read:moderated_channels"
	UserReadSubscriptions          Scope = "user:read:subscriptions"
	UserReadWhispers               Scope = "user:read:whispers"
	UserManageWhispers             Scope = "user:manage:whispers"
	UserWriteChat                  Scope = "user:write:chat"
	WhispersRead                   Scope = "whispers:read"
	WhispersEdit                   Scope = "whispers:edit"
)

func scopeStrings(scopes []Scope) []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = string(s)
	}
	return out
}
