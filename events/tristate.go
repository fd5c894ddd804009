package events

import "encoding/json"

// GifterKind states who gifted a subscription: nobody (the record does not
// apply), an anonymous gifter, or a known user.
type GifterKind int

const (
	GifterAbsent GifterKind = iota
	GifterAnonymous
	GifterKnown
)

// Gifter is the tri-state gifter record flattened into gift-related notices
// as gifter_* fields. Which state applies is decided by field presence:
// gifter_is_anonymous == true means Anonymous, a complete set of user fields
// with gifter_is_anonymous == false means Known, anything else means Absent.
type Gifter struct {
	Kind GifterKind
	User User // populated only when Kind == GifterKnown
}

type gifterWire struct {
	UserID      *string `json:"gifter_user_id,omitempty"`
	UserLogin   *string `json:"gifter_user_login,omitempty"`
	UserName    *string `json:"gifter_user_name,omitempty"`
	IsAnonymous *bool   `json:"gifter_is_anonymous,omitempty"`
}

// decodeFrom reads the gifter_* fields off the full containing object.
func (g *Gifter) decodeFrom(data []byte) error {
	var w gifterWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch {
	case w.IsAnonymous != nil && *w.IsAnonymous:
		*g = Gifter{Kind: GifterAnonymous}
	case w.IsAnonymous == nil || w.UserID == nil || w.UserLogin == nil || w.UserName == nil:
		*g = Gifter{Kind: GifterAbsent}
	default:
		*g = Gifter{
			Kind: GifterKnown,
			User: User{ID: *w.UserID, Login: *w.UserLogin, Name: *w.UserName},
		}
	}
	return nil
}

// encode renders the gifter back to its flattened wire fields.
func (g Gifter) encode() gifterWire {
	switch g.Kind {
	case GifterAnonymous:
		anon := true
		return gifterWire{IsAnonymous: &anon}
	case GifterKnown:
		anon := false
		return gifterWire{
			UserID:      &g.User.ID,
			UserLogin:   &g.User.Login,
			UserName:    &g.User.Name,
			IsAnonymous: &anon,
		}
	default:
		return gifterWire{}
	}
}

// Source is the shared-chat origin of a message, flattened into chat events
// as source_* fields. Present is true only when the full set of source
// fields was delivered; a partial or null set decodes as absent.
type Source struct {
	Present     bool
	Broadcaster User
	MessageID   string
	Badges      []Badge
}

type sourceWire struct {
	BroadcasterID    *string `json:"source_broadcaster_user_id,omitempty"`
	BroadcasterLogin *string `json:"source_broadcaster_user_login,omitempty"`
	BroadcasterName  *string `json:"source_broadcaster_user_name,omitempty"`
	MessageID        *string  `json:"source_message_id,omitempty"`
	Badges           *[]Badge `json:"source_badges,omitempty"`
}

func (s *Source) decodeFrom(data []byte) error {
	var w sourceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.BroadcasterID == nil || w.BroadcasterLogin == nil || w.BroadcasterName == nil ||
		w.MessageID == nil || w.Badges == nil {
		*s = Source{}
		return nil
	}

	*s = Source{
		Present: true,
		Broadcaster: User{
			ID:    *w.BroadcasterID,
			Login: *w.BroadcasterLogin,
			Name:  *w.BroadcasterName,
		},
		MessageID: *w.MessageID,
		Badges:    *w.Badges,
	}
	return nil
}

func (s Source) encode() sourceWire {
	if !s.Present {
		return sourceWire{}
	}
	return sourceWire{
		BroadcasterID:    &s.Broadcaster.ID,
		BroadcasterLogin: &s.Broadcaster.Login,
		BroadcasterName:  &s.Broadcaster.Name,
		MessageID:        &s.MessageID,
		Badges:           &s.Badges,
	}
}

// mergeFields marshals extra alongside base and merges the resulting objects.
// Used by events whose tri-state records flatten into the same JSON object.
func mergeFields(base any, extras ...any) ([]byte, error) {
	merged := make(map[string]json.RawMessage)
	for _, part := range append([]any{base}, extras...) {
		data, err := json.Marshal(part)
		if err != nil {
			return nil, err
		}
		fields := make(map[string]json.RawMessage)
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		for k, v := range fields {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
