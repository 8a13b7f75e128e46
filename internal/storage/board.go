package storage

import (
	"context"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// Board is the high-score view of one leaderboard key. It satisfies
// breakout.ScoreStore.
type Board struct {
	store *Store
	key   string
}

var _ breakout.ScoreStore = (*Board)(nil)

// Board returns the leaderboard for key.
func (s *Store) Board(key string) *Board {
	return &Board{store: s, key: key}
}

// Key returns the leaderboard key.
func (b *Board) Key() string {
	return b.key
}

// LoadHighScore returns the best recorded score, or 0.
func (b *Board) LoadHighScore(ctx context.Context) (int, error) {
	return b.store.HighScore(ctx, b.key)
}

// SaveHighScore records a new best score.
func (b *Board) SaveHighScore(ctx context.Context, score int) error {
	return b.store.SaveScore(ctx, b.key, score)
}
