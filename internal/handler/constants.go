package handler

import "time"

// Timeouts
const (
	// ReadyzTimeout bounds the database ping in the readiness check
	ReadyzTimeout = 2 * time.Second

	// DuelCacheTTL is how long the current week's duel list may be served
	// from cache before re-reading the store
	DuelCacheTTL = 30 * time.Second

	// DuelCacheSize is the maximum number of cached week entries. One
	// entry per week ID, so a handful covers the rollover window.
	DuelCacheSize = 4
)

// User-facing error messages
const (
	ErrMsgInvalidPlayerID  = "Invalid player ID"
	ErrMsgPlayerNotFound   = "Player not found"
	ErrMsgFailedListDuels  = "Failed to list duels"
	ErrMsgFailedGetPlayer  = "Failed to get player"
)

// Log messages
const (
	LogMsgReadinessCheckFailed = "Readiness check failed"
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgListDuelsFailed      = "Failed to list duels for week"
	LogMsgGetPlayerFailed      = "Failed to get player"
)
