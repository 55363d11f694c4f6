package domain

import "github.com/google/uuid"

// Player is a read-only snapshot of a player for the roulette job.
// The job only reads it and, on the penalty path, decrements
// FairPlayScore and Points.
type Player struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Level         int       `json:"level"`
	FairPlayScore int       `json:"fair_play_score"`
	Points        int       `json:"points"`
}

// Pair is a matched couple of players produced by the pairing engine.
type Pair struct {
	A Player `json:"a"`
	B Player `json:"b"`
}
