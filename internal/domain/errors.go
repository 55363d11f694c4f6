package domain

import "errors"

var (
	// ErrPlayerNotFound indicates the requested player does not exist
	ErrPlayerNotFound = errors.New("player not found")

	// ErrDuelNotFound indicates the requested duel does not exist
	ErrDuelNotFound = errors.New("duel not found")

	// ErrAlreadyPenalized indicates a conditional penalty claim lost:
	// the duel's penalty_applied flag was already flipped
	ErrAlreadyPenalized = errors.New("duel already penalized")

	// ErrWeekAlreadySeeded indicates duels already exist for the week
	ErrWeekAlreadySeeded = errors.New("week already seeded")
)
