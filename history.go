package main

import (
	"database/sql"
	"encoding/json"
	"os"

	_ "github.com/lib/pq"
)

// Optional farming-history log. Session state itself is in-memory only;
// this records lifecycle events for later inspection, nothing is ever read
// back into a session.
var historyDB *sql.DB

// InitHistoryDB connects to Postgres using DATABASE_URL. An unset variable
// disables the history log without error.
func InitHistoryDB() error {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		LogInfo("DATABASE_URL not set - farming history disabled")
		return nil
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS farming_history (
			id SERIAL PRIMARY KEY,
			client_id TEXT NOT NULL,
			steam_id TEXT NOT NULL,
			games JSONB NOT NULL,
			started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			stopped_at TIMESTAMPTZ
		)
	`); err != nil {
		return err
	}

	historyDB = db
	LogInfo("Successfully connected to PostgreSQL database")
	return nil
}

// CloseHistoryDB closes the history connection
func CloseHistoryDB() {
	if historyDB != nil {
		historyDB.Close()
	}
}

// RecordFarmStart logs the beginning of a farming run. No-op without a DB.
func RecordFarmStart(clientID string, steamID string, games map[int]string) {
	if historyDB == nil {
		return
	}

	gamesJSON, err := json.Marshal(games)
	if err != nil {
		LogError("Could not encode games for history: %v", err)
		return
	}

	_, err = historyDB.Exec(
		`INSERT INTO farming_history (client_id, steam_id, games) VALUES ($1, $2, $3)`,
		clientID, steamID, gamesJSON,
	)
	if err != nil {
		LogError("Could not record farming start: %v", err)
	}
}

// RecordFarmStop stamps the latest open run for a client. No-op without a DB.
func RecordFarmStop(clientID string) {
	if historyDB == nil {
		return
	}

	_, err := historyDB.Exec(`
		UPDATE farming_history SET stopped_at = now()
		WHERE id = (
			SELECT id FROM farming_history
			WHERE client_id = $1 AND stopped_at IS NULL
			ORDER BY started_at DESC
			LIMIT 1
		)
	`, clientID)
	if err != nil {
		LogError("Could not record farming stop: %v", err)
	}
}
