package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
	"github.com/kenams/sport-challenge-roulette/internal/logger"
	"github.com/kenams/sport-challenge-roulette/internal/repository"
	"github.com/kenams/sport-challenge-roulette/internal/week"
)

// DuelsResponse is the payload for the current-week duel listing
type DuelsResponse struct {
	WeekID string        `json:"week_id"`
	Duels  []domain.Duel `json:"duels"`
}

// DuelHandler serves read-only duel and player lookups for operators.
// Duel listings are cached per week ID since the set only changes when
// the weekly draw runs.
type DuelHandler struct {
	duels   repository.Duel
	players repository.Player
	cache   *lru.LRU[string, []domain.Duel]
	now     func() time.Time
}

// NewDuelHandler creates a new duel handler
func NewDuelHandler(duels repository.Duel, players repository.Player) *DuelHandler {
	return &DuelHandler{
		duels:   duels,
		players: players,
		cache:   lru.NewLRU[string, []domain.Duel](DuelCacheSize, nil, DuelCacheTTL),
		now:     time.Now,
	}
}

// HandleGetCurrentDuels returns the duel list for the current week
func (h *DuelHandler) HandleGetCurrentDuels(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	weekID := week.Resolve(h.now().UTC()).String()

	duels, ok := h.cache.Get(weekID)
	if !ok {
		var err error
		duels, err = h.duels.ListDuelsForWeek(r.Context(), weekID)
		if err != nil {
			log.Error(LogMsgListDuelsFailed, "week_id", weekID, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgFailedListDuels)
			return
		}
		h.cache.Add(weekID, duels)
	}

	if duels == nil {
		duels = []domain.Duel{}
	}

	respondJSON(w, http.StatusOK, DuelsResponse{
		WeekID: weekID,
		Duels:  duels,
	})
}

// HandleGetPlayer returns a single player by ID
func (h *DuelHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerID)
		return
	}

	player, err := h.players.GetPlayer(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
			return
		}
		log.Error(LogMsgGetPlayerFailed, "player_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgFailedGetPlayer)
		return
	}

	respondJSON(w, http.StatusOK, player)
}
