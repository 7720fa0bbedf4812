package main

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// SteamClientManager is the registry of farming sessions, keyed by
// server-generated client id. The registry map is the only shared mutable
// structure; inserts and deletes happen under the write lock, session work
// never does.
type SteamClientManager struct {
	mutex      sync.RWMutex
	clients    map[string]*SteamClient
	newSession func() SteamSession
}

// NewSteamClientManager builds an empty registry. newSession is handed to
// every created client for building its Steam connections.
func NewSteamClientManager(newSession func() SteamSession) *SteamClientManager {
	return &SteamClientManager{
		clients:    make(map[string]*SteamClient),
		newSession: newSession,
	}
}

// CreateClient registers a new idle session and returns its generated id.
// Never fails; uuid collisions are not a practical concern.
func (m *SteamClientManager) CreateClient() string {
	id := uuid.NewString()
	client := NewSteamClient(id, m.newSession)

	m.mutex.Lock()
	m.clients[id] = client
	m.mutex.Unlock()

	LogInfo("Created client %s", id)
	return id
}

// GetClient looks up a session by id.
func (m *SteamClientManager) GetClient(id string) (*SteamClient, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	client, ok := m.clients[id]
	return client, ok
}

// DestroyClient stops (if needed) and removes a session. Returns false for
// an unknown id. The id disappears from the registry before the session's
// disconnect settles, so a destroyed id is immediately absent.
func (m *SteamClientManager) DestroyClient(id string) bool {
	m.mutex.Lock()
	client, ok := m.clients[id]
	if !ok {
		m.mutex.Unlock()
		return false
	}
	delete(m.clients, id)
	m.mutex.Unlock()

	client.markDestroyed()
	if client.IsRunning() {
		client.Stop()
	}

	LogInfo("Destroyed client %s", id)
	return true
}

// GetAllClients snapshots every registered session concurrently. A failure
// in one snapshot never fails the aggregate.
func (m *SteamClientManager) GetAllClients(ctx context.Context) []SteamClientInfo {
	m.mutex.RLock()
	clients := make([]*SteamClient, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.mutex.RUnlock()

	infos := make([]SteamClientInfo, len(clients))
	var wg sync.WaitGroup
	for i, client := range clients {
		wg.Add(1)
		go func(i int, client *SteamClient) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					LogError("Snapshot for client %s panicked: %v", client.ID(), r)
					infos[i] = SteamClientInfo{
						ClientID:    client.ID(),
						ActiveGames: map[int]string{},
						SteamUser:   SteamUserInfo{OwnedGames: []OwnedGame{}},
					}
				}
			}()
			infos[i] = client.GetInfo(ctx)
		}(i, client)
	}
	wg.Wait()

	return infos
}
