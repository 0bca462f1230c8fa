package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound - токен под таким ключом не сохранялся.
var ErrNotFound = errors.New("token not found")

const schema = `
CREATE TABLE IF NOT EXISTS tokens (
	key           TEXT PRIMARY KEY,
	access_token  TEXT NOT NULL,
	refresh_token TEXT NOT NULL DEFAULT '',
	updated_at    TEXT NOT NULL
);
`

// Token - сохраненная пара токенов сессии.
type Token struct {
	AccessToken  string
	RefreshToken string
	UpdatedAt    time.Time
}

// Store - durable-хранилище токенов сессии в локальном sqlite-файле.
// Переживает рестарт процесса и служит запасным источником токена,
// когда провайдер авторизации недоступен.
type Store struct {
	db *sql.DB
}

func New(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}

	// Файл маленький и обращений немного, одного соединения достаточно.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping token store: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate token store: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save сохраняет пару токенов, затирая предыдущую под тем же ключом.
func (s *Store) Save(ctx context.Context, key string, token Token) error {
	if key == "" {
		return errors.New("empty token key")
	}

	query := `
		INSERT INTO tokens (key, access_token, refresh_token, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			updated_at    = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		key,
		token.AccessToken,
		token.RefreshToken,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Load возвращает сохраненную пару токенов или ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) (Token, error) {
	query := `
		SELECT access_token, refresh_token, updated_at
		FROM tokens
		WHERE key = ?
	`

	var (
		token     Token
		updatedAt string
	)
	err := s.db.QueryRowContext(ctx, query, key).Scan(&token.AccessToken, &token.RefreshToken, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Token{}, ErrNotFound
	}
	if err != nil {
		return Token{}, fmt.Errorf("load token: %w", err)
	}

	token.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return Token{}, fmt.Errorf("parse token timestamp: %w", err)
	}
	return token, nil
}

// Delete удаляет пару токенов; отсутствие записи не считается ошибкой.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tokens WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
