package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yoteibot/yoteibot/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

func New(dbPath string) (*Storage, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS subscriptions (
			chat_id INTEGER PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// AddSubscription subscribes a chat to the daily agenda. Re-subscribing an
// already subscribed chat just refreshes the title.
func (s *Storage) AddSubscription(chatID int64, title string) error {
	_, err := s.db.Exec(
		`INSERT INTO subscriptions (chat_id, title) VALUES (?, ?)
		 ON CONFLICT(chat_id) DO UPDATE SET title = excluded.title`,
		chatID, title,
	)
	return err
}

// RemoveSubscription unsubscribes a chat. Returns true when the chat was
// actually subscribed.
func (s *Storage) RemoveSubscription(chatID int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM subscriptions WHERE chat_id = ?`, chatID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IsSubscribed reports whether a chat currently receives the daily agenda.
func (s *Storage) IsSubscribed(chatID int64) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM subscriptions WHERE chat_id = ?`, chatID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListSubscriptions returns a fresh snapshot of all subscribed chats. The
// scheduler iterates over this copy, so a command-side change during a tick
// simply takes effect on the next one.
func (s *Storage) ListSubscriptions() ([]*domain.Subscription, error) {
	rows, err := s.db.Query(
		`SELECT chat_id, title, created_at FROM subscriptions ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*domain.Subscription
	for rows.Next() {
		sub := &domain.Subscription{}
		var createdAt time.Time
		if err := rows.Scan(&sub.ChatID, &sub.Title, &createdAt); err != nil {
			return nil, err
		}
		sub.CreatedAt = createdAt
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
