package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements ContextStore over a local SQLite file. It is a
// mirror of the client-side store, so corruption or unavailability only ever
// degrades to "start fresh".
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the context database.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS conversation_contexts (
		client_id TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		last_activity INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contexts_last_activity ON conversation_contexts(last_activity);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// TryLoad reads and decodes the persisted context for a client. Any failure,
// including corrupt payloads, reads as "nothing stored".
func (s *SQLiteStore) TryLoad(ctx context.Context, clientID string) (chat.ConversationContext, time.Time, bool) {
	var payload string
	var lastActivity int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, last_activity FROM conversation_contexts WHERE client_id = ?`,
		clientID,
	).Scan(&payload, &lastActivity)
	if err == sql.ErrNoRows {
		return chat.ConversationContext{}, time.Time{}, false
	}
	if err != nil {
		log.Printf("[store] load failed for client=%s: %v", clientID, err)
		return chat.ConversationContext{}, time.Time{}, false
	}

	var record persistedContext
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		log.Printf("[store] corrupt payload for client=%s, discarding: %v", clientID, err)
		s.TryClear(ctx, clientID)
		return chat.ConversationContext{}, time.Time{}, false
	}

	conversation := chat.ConversationContext{
		Messages:       record.Messages,
		CurrentTopic:   record.CurrentTopic,
		UserIntent:     record.UserIntent,
		LastAskedAbout: record.LastAskedAbout,
	}
	return conversation, time.UnixMilli(lastActivity), true
}

// TrySave writes the context, stamping now as last activity.
func (s *SQLiteStore) TrySave(ctx context.Context, clientID string, conversation chat.ConversationContext) bool {
	now := time.Now()
	record := persistedContext{
		Messages:       conversation.Messages,
		CurrentTopic:   conversation.CurrentTopic,
		UserIntent:     conversation.UserIntent,
		LastAskedAbout: conversation.LastAskedAbout,
		LastActivity:   now.UnixMilli(),
	}
	payload, err := json.Marshal(record)
	if err != nil {
		log.Printf("[store] encode failed for client=%s: %v", clientID, err)
		return false
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO conversation_contexts (client_id, payload, last_activity, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			payload = excluded.payload,
			last_activity = excluded.last_activity,
			updated_at = excluded.updated_at`,
		clientID, string(payload), record.LastActivity, now.Unix(),
	)
	if err != nil {
		log.Printf("[store] save failed for client=%s: %v", clientID, err)
		return false
	}
	return true
}

// TryClear removes the persisted context for a client.
func (s *SQLiteStore) TryClear(ctx context.Context, clientID string) bool {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM conversation_contexts WHERE client_id = ?`, clientID,
	); err != nil {
		log.Printf("[store] clear failed for client=%s: %v", clientID, err)
		return false
	}
	return true
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
