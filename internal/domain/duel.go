package domain

import (
	"time"

	"github.com/google/uuid"
)

// DuelStatus represents the lifecycle state of a duel
type DuelStatus string

const (
	DuelStatusPending          DuelStatus = "pending"
	DuelStatusChallengeCreated DuelStatus = "challenge_created"
	DuelStatusCompleted        DuelStatus = "completed"
	DuelStatusPenalized        DuelStatus = "penalized"
)

// Sport is a forced discipline assigned to a duel
type Sport string

const (
	SportRunning  Sport = "running"
	SportPushups  Sport = "pushups"
	SportSquats   Sport = "squats"
	SportPlank    Sport = "plank"
	SportBurpees  Sport = "burpees"
	SportJumpRope Sport = "jump_rope"
)

// Sports is the fixed ordered list the sport assignor rotates over.
// Order matters: the assignment is index-based.
var Sports = []Sport{
	SportRunning,
	SportPushups,
	SportSquats,
	SportPlank,
	SportBurpees,
	SportJumpRope,
}

// Duel is a forced weekly pairing of two players with an assigned sport
// and a deadline. Duels are created only by the seeder and mutated only
// by the penalty sweeper or the downstream challenge flow; never deleted.
type Duel struct {
	ID             uuid.UUID  `json:"id"`
	WeekID         string     `json:"week_id"`
	PlayerA        uuid.UUID  `json:"player_a"`
	PlayerB        uuid.UUID  `json:"player_b"`
	Sport          Sport      `json:"sport"`
	Status         DuelStatus `json:"status"`
	Deadline       time.Time  `json:"deadline"`
	PenaltyApplied bool       `json:"penalty_applied"`
	CreatedAt      time.Time  `json:"created_at"`
}

// PenaltyOutcome reports the post-penalty scores of both participants,
// returned by the transactional penalty path for auditing.
type PenaltyOutcome struct {
	DuelID      uuid.UUID `json:"duel_id"`
	PlayerA     uuid.UUID `json:"player_a"`
	PlayerB     uuid.UUID `json:"player_b"`
	ScoreA      int       `json:"score_a"`
	PointsA     int       `json:"points_a"`
	ScoreB      int       `json:"score_b"`
	PointsB     int       `json:"points_b"`
	PenalizedAt time.Time `json:"penalized_at"`
}
