package main

import (
	"context"
)

// LogOnCredentials is one login attempt's input.
type LogOnCredentials struct {
	Username string
	Password string
	OTP      string
}

// AccountProfile is the provider's view of the authenticated account.
type AccountProfile struct {
	SteamID string
	Name    string
	Avatar  string
	Status  string
}

// Provider-level events, delivered on Events(). A login attempt produces
// exactly one of LoggedOnEvent or LogOnFailedEvent; DisconnectedEvent is the
// last event of a connection.
type (
	LoggedOnEvent    struct{}
	LogOnFailedEvent struct {
		// Reason is already classified into the domain error taxonomy.
		Reason error
	}
	DisconnectedEvent  struct{}
	FriendMessageEvent struct {
		SenderID string
		Message  string
	}
)

// SteamSession is one connection to Steam. A session drives it through
// LogOn, presence and games-played declarations, and LogOff; notifications
// arrive on Events(). Implementations are single-use: one LogOn cycle per
// instance, a fresh instance per farming run.
type SteamSession interface {
	// LogOn submits credentials. The outcome arrives on Events().
	LogOn(creds LogOnCredentials)

	// LogOff requests disconnection. Confirmation arrives on Events() as a
	// DisconnectedEvent.
	LogOff()

	// SetPersonaOnline marks the account as online.
	SetPersonaOnline()

	// SetGamesPlayed declares the given apps as currently being played.
	SetGamesPlayed(appIDs []int)

	// OwnedGames enumerates the games the authenticated account owns.
	OwnedGames(ctx context.Context) ([]OwnedGame, error)

	// Profile reports the authenticated account's profile. ok is false
	// before login completes.
	Profile() (profile AccountProfile, ok bool)

	// SendChatMessage sends a chat message to another user.
	SendChatMessage(toID string, message string)

	// Events returns the notification stream. It is closed after the
	// DisconnectedEvent of the connection has been delivered.
	Events() <-chan interface{}
}
