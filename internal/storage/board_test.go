package storage

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestBoardRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	board := store.Board("breakout_easy")

	if board.Key() != "breakout_easy" {
		t.Errorf("Key() = %q", board.Key())
	}

	high, err := board.LoadHighScore(ctx)
	if err != nil || high != 0 {
		t.Fatalf("LoadHighScore() = %d, %v; expected 0, nil", high, err)
	}

	if err := board.SaveHighScore(ctx, 11); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	high, err = board.LoadHighScore(ctx)
	if err != nil || high != 11 {
		t.Errorf("LoadHighScore() = %d, %v; expected 11, nil", high, err)
	}
}

func TestBoardFeedsSession(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	store.SaveScore(ctx, "breakout", 6)

	s, err := breakout.NewSession(ctx, config.Default(),
		breakout.WithSeed(1),
		breakout.WithStore(store.Board("breakout")),
	)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if s.HighScore() != 6 {
		t.Errorf("session high score = %d, expected 6 from the store", s.HighScore())
	}

	// An idle session never writes
	s.Step(core.Intent{})
	if n, _ := store.TopScores(ctx, "breakout", 10); len(n) != 1 {
		t.Errorf("expected a single stored score, got %d", len(n))
	}
}
