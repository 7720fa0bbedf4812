package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// ClientState is the lifecycle state of a farming session.
type ClientState int

const (
	StateIdle ClientState = iota
	StateAuthenticating
	StateValidating
	StateRunning
	StateStoppingDisconnect
)

func (s ClientState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAuthenticating:
		return "authenticating"
	case StateValidating:
		return "validating"
	case StateRunning:
		return "running"
	case StateStoppingDisconnect:
		return "stopping"
	}
	return "unknown"
}

// swapped in tests
var (
	recordFarmStart = RecordFarmStart
	recordFarmStop  = RecordFarmStop
)

// SteamClient is one hour-farming session: a state machine around a single
// SteamSession connection, the set of games being farmed, and their scraped
// achievement data.
type SteamClient struct {
	id         string
	newSession func() SteamSession

	mutex        sync.Mutex
	state        ClientState
	provider     SteamSession
	games        map[int]string
	achievements map[int][]Achievement
	startTime    int64
	generation   int
	destroyed    bool

	// swapped in tests
	fetchAchievements func(ctx context.Context, steamID string, appID int) ([]Achievement, error)
}

// NewSteamClient returns an idle session. newSession builds a fresh
// connection for every farming run.
func NewSteamClient(id string, newSession func() SteamSession) *SteamClient {
	return &SteamClient{
		id:                id,
		newSession:        newSession,
		state:             StateIdle,
		fetchAchievements: GetSteamAchievements,
	}
}

// ID returns the session's registry key.
func (c *SteamClient) ID() string {
	return c.id
}

// IsRunning reports whether the session is fully running. Transitional
// states (authenticating, validating, stopping) report false here but still
// reject a concurrent Start.
func (c *SteamClient) IsRunning() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state == StateRunning
}

// Start logs in, validates ownership of the requested games and begins
// farming them. games maps app id to display name. Blocks until the session
// is running and all achievement fetches have settled, or returns a domain
// error with the session back in idle.
func (c *SteamClient) Start(ctx context.Context, creds LogOnCredentials, games map[int]string) error {
	c.mutex.Lock()
	if c.state != StateIdle {
		c.mutex.Unlock()
		return ErrAlreadyRunning
	}
	c.state = StateAuthenticating
	c.generation++
	gen := c.generation
	c.games = copyGames(games)
	c.achievements = make(map[int][]Achievement, len(games))
	provider := c.newSession()
	c.provider = provider
	c.mutex.Unlock()

	LogInfo("Client %s: logging on as %s", c.id, creds.Username)
	provider.LogOn(creds)

	if err := awaitLogin(ctx, provider); err != nil {
		LogWarning("Client %s: %v", c.id, err)
		c.abortStart(provider)
		return err
	}

	c.setState(StateValidating)

	owned, err := provider.OwnedGames(ctx)
	if err != nil {
		c.abortStart(provider)
		return fmt.Errorf("could not verify game ownership: %w", err)
	}

	if unowned := unownedGameNames(games, owned); len(unowned) > 0 {
		LogWarning("Client %s: account does not own: %s", c.id, strings.Join(unowned, ", "))
		c.abortStart(provider)
		return &UnownedGamesError{Names: unowned}
	}

	LogInfo("Initializing Steam Client...")
	provider.SetPersonaOnline()
	provider.SetGamesPlayed(shuffleGameIDs(games))

	c.mutex.Lock()
	if c.destroyed {
		// Destroyed while the login was in flight; the registry no longer
		// knows this id, so the run must not survive.
		c.state = StateIdle
		c.startTime = 0
		c.mutex.Unlock()
		provider.LogOff()
		return ErrClientNotFound
	}
	c.state = StateRunning
	c.startTime = nowMillis()
	c.mutex.Unlock()
	LogInfo("Steam Client initialized successfully")

	if profile, ok := provider.Profile(); ok {
		recordFarmStart(c.id, profile.SteamID, games)
	}

	go c.pumpEvents(provider, gen)

	c.loadAllAchievements(ctx, provider, gen)
	return nil
}

// Stop takes the session out of the running state and requests disconnect.
// Returns false when the session is not running. The disconnect
// confirmation is a trailing event: it clears startTime asynchronously.
func (c *SteamClient) Stop() bool {
	c.mutex.Lock()
	if c.state != StateRunning {
		c.mutex.Unlock()
		return false
	}
	c.state = StateStoppingDisconnect
	provider := c.provider
	c.mutex.Unlock()

	provider.LogOff()

	c.mutex.Lock()
	c.state = StateIdle
	c.mutex.Unlock()

	recordFarmStop(c.id)
	return true
}

// GetInfo builds a point-in-time snapshot. Callable in any state; when not
// running it returns an all-empty snapshot. A provider that reports zero
// owned games (transient API hiccup) still yields a best-effort snapshot.
func (c *SteamClient) GetInfo(ctx context.Context) SteamClientInfo {
	c.mutex.Lock()
	state := c.state
	provider := c.provider
	startTime := c.startTime
	games := copyGames(c.games)
	achievements := make(map[int][]Achievement, len(c.achievements))
	for id, list := range c.achievements {
		achievements[id] = list
	}
	c.mutex.Unlock()

	info := SteamClientInfo{
		ClientID:    c.id,
		ActiveGames: map[int]string{},
		SteamUser: SteamUserInfo{
			OwnedGames: []OwnedGame{},
		},
	}

	if state != StateRunning || provider == nil {
		return info
	}

	profile, ok := provider.Profile()
	if !ok {
		return info
	}

	owned, err := provider.OwnedGames(ctx)
	if err != nil {
		LogWarning("Client %s: could not fetch owned games for snapshot: %v", c.id, err)
		owned = nil
	}

	totalPlaytime := 0
	for i := range owned {
		list := achievements[owned[i].AppID]
		if list == nil {
			list = []Achievement{}
		}
		owned[i].Achievements = list
		totalPlaytime += owned[i].PlaytimeForever
	}
	if owned == nil {
		owned = []OwnedGame{}
	}

	avatar := profile.Avatar
	if avatar == "" {
		avatar = DefaultAvatarURL
	}
	status := profile.Status
	if status == "" {
		status = "Offline"
	}

	info.SteamUser = SteamUserInfo{
		ID:            profile.SteamID,
		Name:          profile.Name,
		Avatar:        avatar,
		OwnedGames:    owned,
		TotalPlaytime: totalPlaytime,
	}
	info.ActiveGames = games
	info.Status = status
	info.StartTime = startTime
	return info
}

// markDestroyed flags the session as removed from the registry. A start that
// completes afterwards disconnects instead of going running.
func (c *SteamClient) markDestroyed() {
	c.mutex.Lock()
	c.destroyed = true
	c.mutex.Unlock()
}

func (c *SteamClient) setState(s ClientState) {
	c.mutex.Lock()
	c.state = s
	c.mutex.Unlock()
}

// abortStart tears a failed start back down to idle.
func (c *SteamClient) abortStart(provider SteamSession) {
	provider.LogOff()
	c.mutex.Lock()
	c.state = StateIdle
	c.startTime = 0
	c.provider = nil
	c.mutex.Unlock()
}

// awaitLogin resolves a login attempt: the first of the success or failure
// notifications wins, bounded by LoginTimeout. Reading a single channel
// retires both outcomes at once, so an attempt can never double-resolve.
func awaitLogin(ctx context.Context, provider SteamSession) error {
	timeout := time.NewTimer(LoginTimeout)
	defer timeout.Stop()

	for {
		select {
		case ev, ok := <-provider.Events():
			if !ok {
				return ErrLoginConnectionLost
			}
			switch e := ev.(type) {
			case *LoggedOnEvent:
				return nil
			case *LogOnFailedEvent:
				return e.Reason
			case *DisconnectedEvent:
				return ErrLoginConnectionLost
			}
		case <-timeout.C:
			return ErrLoginTimeout
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// pumpEvents services a running connection: answers friend messages and
// observes the trailing disconnect. gen scopes its effects to the farming
// run that spawned it, so a stop-then-restart is never corrupted by stale
// events.
func (c *SteamClient) pumpEvents(provider SteamSession, gen int) {
	for ev := range provider.Events() {
		switch e := ev.(type) {
		case *FriendMessageEvent:
			if reply, ok := AutoReply(e.Message, c.statsReport); ok {
				provider.SendChatMessage(e.SenderID, reply)
			}
		case *DisconnectedEvent:
			LogInfo("Bot stopped successfully.")
			dropped := false
			c.mutex.Lock()
			if c.generation == gen {
				c.startTime = 0
				if c.state == StateRunning {
					// Provider-initiated disconnect; Stop was never called,
					// so the history run is still open.
					c.state = StateIdle
					dropped = true
				}
			}
			c.mutex.Unlock()
			if dropped {
				recordFarmStop(c.id)
			}
			return
		}
	}
}

// loadAllAchievements fetches achievement data for every farmed game
// concurrently and waits for all fetches to settle. A failed fetch is
// recorded as empty and never fails the start.
func (c *SteamClient) loadAllAchievements(ctx context.Context, provider SteamSession, gen int) {
	profile, ok := provider.Profile()
	if !ok {
		LogWarning("Client %s: no profile available, skipping achievement load", c.id)
		return
	}

	c.mutex.Lock()
	games := copyGames(c.games)
	c.mutex.Unlock()

	var wg sync.WaitGroup
	for appID := range games {
		wg.Add(1)
		go func(appID int) {
			defer wg.Done()
			list, err := c.fetchAchievements(ctx, profile.SteamID, appID)
			if err != nil {
				LogWarning("Client %s: achievements unavailable for game %d: %v", c.id, appID, err)
				list = nil
			}
			if list == nil {
				list = []Achievement{}
			}
			c.mutex.Lock()
			if c.generation == gen {
				c.achievements[appID] = list
			}
			c.mutex.Unlock()
		}(appID)
	}
	wg.Wait()
}

// statsReport renders the !stats chat reply.
func (c *SteamClient) statsReport() string {
	c.mutex.Lock()
	games := copyGames(c.games)
	startTime := c.startTime
	c.mutex.Unlock()

	ids := make([]int, 0, len(games))
	for id := range games {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("- %s (ID: %d)", games[id], id))
	}

	return fmt.Sprintf(
		"Stats:\n- Time (GMT-3): %s\n- Uptime: %s\n- Games Running:\n%s",
		getTimeInGMT3(),
		getScriptUptime(startTime),
		strings.Join(lines, "\n"),
	)
}

// unownedGameNames maps the requested games missing from owned back to their
// display names, with a synthetic label when no name is known.
func unownedGameNames(requested map[int]string, owned []OwnedGame) []string {
	ownedSet := make(map[int]bool, len(owned))
	for _, g := range owned {
		ownedSet[g.AppID] = true
	}

	missing := make([]int, 0)
	for id := range requested {
		if !ownedSet[id] {
			missing = append(missing, id)
		}
	}
	sort.Ints(missing)

	names := make([]string, 0, len(missing))
	for _, id := range missing {
		name := requested[id]
		if name == "" {
			name = fmt.Sprintf("Game %d", id)
		}
		names = append(names, name)
	}
	return names
}

func copyGames(games map[int]string) map[int]string {
	out := make(map[int]string, len(games))
	for id, name := range games {
		out[id] = name
	}
	return out
}
