package roulette

// Notification copy
const (
	NotifyTitleDrawn   = "The Roulette drew you!"
	NotifyBodyDrawn    = "You were drawn into a forced %s duel. Complete it before %s or lose fair-play and points."
	NotifyTitlePenalty = "Duel deadline missed"
	NotifyBodyPenalty  = "Your %s duel expired unresolved: -%d fair-play, -%d points."
)

// Log Messages
const (
	LogMsgRunStarting       = "Roulette job starting"
	LogMsgRunCompleted      = "Roulette job completed"
	LogMsgSweepAborted      = "Penalty sweep aborted, could not enumerate overdue duels"
	LogMsgWeekAlreadySeeded = "Week already seeded, skipping draw"
	LogMsgPoolTooSmall      = "Not enough eligible players for a draw"
	LogMsgEligibleFetchFail = "Eligible player fetch failed, skipping draw"
	LogMsgDuelsSeeded       = "Weekly duels seeded"
	LogMsgDuelPenalized     = "Duel penalized"
	LogMsgPenaltyRetry      = "Failed to penalize duel, will retry next sweep"
	LogMsgNotifyFailed      = "Failed to deliver notification"
	LogMsgPublishFailed     = "Failed to publish event"
)
