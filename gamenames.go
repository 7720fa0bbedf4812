package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Overridable in tests.
var storeAPIBaseURL = "https://store.steampowered.com/api/appdetails?appids="

var storeHTTPClient = &http.Client{Timeout: 10 * time.Second}

// FetchGameNames resolves display names for a set of app ids through the
// Steam store, one id at a time. A failed lookup falls back to a synthetic
// name; it never fails the whole batch.
func FetchGameNames(ctx context.Context, gameIDs []int) map[int]string {
	names := make(map[int]string, len(gameIDs))

	for _, gameID := range gameIDs {
		name, err := fetchGameName(ctx, gameID)
		if err != nil {
			LogWarning("Could not resolve name for game %d: %v", gameID, err)
			names[gameID] = fmt.Sprintf("Unknown Game (ID: %d)", gameID)
			continue
		}
		LogInfo("Loaded game data for %s", name)
		names[gameID] = name
	}

	LogInfo("Game data loaded")
	return names
}

func fetchGameName(ctx context.Context, gameID int) (string, error) {
	url := storeAPIBaseURL + strconv.Itoa(gameID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := storeHTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("store returned status %d", resp.StatusCode)
	}

	var payload map[string]struct {
		Success bool `json:"success"`
		Data    struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	entry, ok := payload[strconv.Itoa(gameID)]
	if !ok || !entry.Success || entry.Data.Name == "" {
		return "", fmt.Errorf("no app details for game %d", gameID)
	}
	return entry.Data.Name, nil
}
