package api

import (
	"net/http"

	"github.com/fizennn/Seejam-Server/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListCards returns the full card catalog.
func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.repo.GetCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCards})
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetCard returns one card by id.
func (h *Handler) GetCard(c *gin.Context) {
	id, ok := paramUint(c, "cardID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCardID})
		return
	}
	card, err := h.cards.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// ListNpcs returns all NPC opponents.
func (h *Handler) ListNpcs(c *gin.Context) {
	npcs, err := h.repo.GetNpcs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchNpcs})
		return
	}
	c.JSON(http.StatusOK, npcs)
}

// ListEquipment returns the equipment catalog.
func (h *Handler) ListEquipment(c *gin.Context) {
	items, err := h.repo.GetEquipment()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchItems})
		return
	}
	c.JSON(http.StatusOK, items)
}
