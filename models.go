package main

import (
	"time"
)

// Service-wide constants
const (
	// Maximum number of games one session may farm at once
	MaxFarmGames = 30

	// How long a login attempt may wait for the Steam response
	LoginTimeout = 30 * time.Second

	// Served when the profile avatar is unknown
	DefaultAvatarURL = "https://avatars.fastly.steamstatic.com/default_full.jpg"
)

// Achievement is one unlock record scraped from a public profile
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	UnlockTime  string `json:"unlockTime,omitempty"`
	Image       string `json:"image"`
}

// OwnedGame mirrors the owned-games payload the dashboard consumes
type OwnedGame struct {
	AppID                    int           `json:"appid"`
	Name                     string        `json:"name"`
	Playtime2Weeks           *int          `json:"playtime_2weeks"`
	PlaytimeForever          int           `json:"playtime_forever"`
	ImgIconURL               string        `json:"img_icon_url"`
	ImgLogoURL               string        `json:"img_logo_url"`
	HasCommunityVisibleStats bool          `json:"has_community_visible_stats"`
	PlaytimeWindowsForever   int           `json:"playtime_windows_forever"`
	PlaytimeMacForever       int           `json:"playtime_mac_forever"`
	PlaytimeLinuxForever     int           `json:"playtime_linux_forever"`
	RTimeLastPlayed          int64         `json:"rtime_last_played"`
	Achievements             []Achievement `json:"achievements"`
}

// SteamUserInfo is the authenticated-profile part of a snapshot
type SteamUserInfo struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Avatar        string      `json:"avatar"`
	OwnedGames    []OwnedGame `json:"ownedGames"`
	TotalPlaytime int         `json:"totalPlaytime"`
}

// SteamClientInfo is a point-in-time snapshot of one farming session.
// StartTime is milliseconds since epoch, 0 while the session is stopped.
type SteamClientInfo struct {
	ClientID    string         `json:"clientId"`
	SteamUser   SteamUserInfo  `json:"steamUser"`
	ActiveGames map[int]string `json:"activeGames"`
	Status      string         `json:"status"`
	StartTime   int64          `json:"startTime"`
}

// StartBotRequest is the body of POST /start-bot
type StartBotRequest struct {
	ClientID string `json:"clientId"`
	Username string `json:"username"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
	GamesID  []int  `json:"gamesId"`
}

// ClientIDRequest is the body of DELETE /client and POST /stop-bot
type ClientIDRequest struct {
	ClientID string `json:"clientId"`
}
