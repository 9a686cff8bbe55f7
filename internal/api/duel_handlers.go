package api

import (
	"net/http"
	"strings"

	"github.com/fizennn/Seejam-Server/internal/constants"
	"github.com/fizennn/Seejam-Server/internal/game"
	"github.com/fizennn/Seejam-Server/internal/logging"
	"github.com/fizennn/Seejam-Server/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateDuelRequest names the two combatants. Deck ids are required for
// user-owned sides and ignored for NPCs.
type CreateDuelRequest struct {
	Player1Type   string `json:"player1Type"`
	Player1ID     uint   `json:"player1Id"`
	Player1DeckID *uint  `json:"player1DeckId"`
	Player2Type   string `json:"player2Type"`
	Player2ID     uint   `json:"player2Id"`
	Player2DeckID *uint  `json:"player2DeckId"`
}

type PlayCardRequest struct {
	CardID uint `json:"cardId"`
}

func playerRefFromRequest(kind string, id uint, deckID *uint) (service.PlayerRef, bool) {
	k, err := game.ParseOwnerKind(kind)
	if err != nil || id == 0 {
		return service.PlayerRef{}, false
	}
	return service.PlayerRef{Owner: game.OwnerRef{Kind: k, ID: id}, DeckID: deckID}, true
}

// CreateDuel starts a new duel between two combatants.
func (h *Handler) CreateDuel(c *gin.Context) {
	viewerID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
		return
	}
	var req CreateDuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p1, ok := playerRefFromRequest(req.Player1Type, req.Player1ID, req.Player1DeckID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p2, ok := playerRefFromRequest(req.Player2Type, req.Player2ID, req.Player2DeckID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	view, err := service.CreateDuel(h.repo, h.repo, h.shuffler, p1, p2, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	logging.Info("Duel created", logging.Fields{
		constants.LogFieldDuelID: view.ID,
		constants.LogFieldUserID: viewerID,
	})
	c.JSON(http.StatusCreated, view)
}

// GetDuel returns the sanitized state of a duel for the session user.
func (h *Handler) GetDuel(c *gin.Context) {
	viewerID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
		return
	}
	duelID := strings.TrimSpace(c.Param("duelID"))
	if duelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidDuelID})
		return
	}
	view, err := service.GetDuel(h.repo, duelID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PlayCard plays one card from the session user's hand.
func (h *Handler) PlayCard(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
		return
	}
	duelID := strings.TrimSpace(c.Param("duelID"))
	if duelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidDuelID})
		return
	}
	var req PlayCardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CardID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCardID})
		return
	}
	view, err := service.PlayCard(h.repo, h.cards, duelID, userID, req.CardID)
	if err != nil {
		respondError(c, err)
		return
	}
	logging.Info("Card played", logging.Fields{
		constants.LogFieldDuelID: duelID,
		constants.LogFieldUserID: userID,
		constants.LogFieldCardID: req.CardID,
	})
	c.JSON(http.StatusOK, view)
}

// EndTurn closes the session user's turn, running the NPC opponent's plays
// when applicable.
func (h *Handler) EndTurn(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
		return
	}
	duelID := strings.TrimSpace(c.Param("duelID"))
	if duelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidDuelID})
		return
	}
	view, err := service.EndTurn(h.repo, h.cards, duelID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	logging.Info("Turn ended", logging.Fields{
		constants.LogFieldDuelID: duelID,
		constants.LogFieldUserID: userID,
	})
	c.JSON(http.StatusOK, view)
}
