package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientIDsAreUnique(t *testing.T) {
	manager := NewSteamClientManager((&fakeFactory{}).new)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := manager.CreateClient()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate client id %s", id)
		seen[id] = true
	}
}

func TestGetClientUnknown(t *testing.T) {
	manager := NewSteamClientManager((&fakeFactory{}).new)

	_, ok := manager.GetClient("nope")
	assert.False(t, ok)
}

func TestDestroyUnknownClient(t *testing.T) {
	manager := NewSteamClientManager((&fakeFactory{}).new)
	assert.False(t, manager.DestroyClient("nope"))
}

func TestDestroyStopsRunningClient(t *testing.T) {
	ff := &fakeFactory{configure: func(f *fakeSession) {
		f.ownedGames = []OwnedGame{ownedGame(730, "Counter-Strike 2", 120)}
	}}
	manager := NewSteamClientManager(ff.new)

	id := manager.CreateClient()
	c, ok := manager.GetClient(id)
	require.True(t, ok)

	c.fetchAchievements = noAchievements
	require.NoError(t, c.Start(context.Background(), validCreds(), map[int]string{730: "Counter-Strike 2"}))

	assert.True(t, manager.DestroyClient(id))

	_, ok = manager.GetClient(id)
	assert.False(t, ok)
	assert.False(t, c.IsRunning())
	assert.True(t, ff.last().wasDisconnected())
}

func TestGetAllClientsSnapshotsEveryClient(t *testing.T) {
	manager := NewSteamClientManager((&fakeFactory{}).new)

	ids := map[string]bool{
		manager.CreateClient(): true,
		manager.CreateClient(): true,
		manager.CreateClient(): true,
	}

	infos := manager.GetAllClients(context.Background())
	require.Len(t, infos, 3)
	for _, info := range infos {
		assert.True(t, ids[info.ClientID], "unexpected client id %s", info.ClientID)
		assert.Empty(t, info.ActiveGames)
	}
}
