package main

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors. Login failures carry the exact messages the original bot
// logged for each Steam result code; the dashboard matches on them.
var (
	ErrAlreadyRunning      = errors.New("Bot is already running.")
	ErrNotRunning          = errors.New("Bot is not running.")
	ErrClientNotFound      = errors.New("Client don't exist")
	ErrInvalidPassword     = errors.New("Login Failed: Invalid Password.")
	ErrLoggedInElsewhere   = errors.New("Login Failed: Already logged in elsewhere.")
	ErrSteamGuardRequired  = errors.New("Login Failed: Steam Guard required.")
	ErrLoginTimeout        = errors.New("Login Failed: Timed out waiting for Steam.")
	ErrLoginConnectionLost = errors.New("Login Failed: Connection to Steam lost.")
)

// UnownedGamesError reports requested games the account does not own.
// The message format is a contract: the dashboard splits on
// "You don't own the following games: " and ". You can only farm hours".
type UnownedGamesError struct {
	Names []string
}

func (e *UnownedGamesError) Error() string {
	return fmt.Sprintf(
		"You don't own the following games: %s. You can only farm hours for games that you own.",
		strings.Join(e.Names, ", "),
	)
}
