package api

import (
	"net/http"
	"strings"

	"github.com/fizennn/Seejam-Server/internal/constants"
	"github.com/fizennn/Seejam-Server/internal/game"
	"github.com/fizennn/Seejam-Server/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Level    int    `json:"level"`
	HP       int    `json:"hp"`
	Atk      int    `json:"atk"`
	Def      int    `json:"def"`
}

type CreateDeckRequest struct {
	Name  string          `json:"name"`
	Cards []game.DeckCard `json:"cards"`
}

type AddInventoryRequest struct {
	EquipmentID uint `json:"equipmentId"`
}

// EquipRequest maps slot names to equipment ids from the inventory.
type EquipRequest map[game.EquipmentType]uint

// CreateUser registers a profile. Credentials are handled by the upstream
// identity service, not here.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Email == "" || req.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	user := &game.User{
		Email:     req.Email,
		FullName:  req.FullName,
		Level:     req.Level,
		HP:        req.HP,
		Atk:       req.Atk,
		Def:       req.Def,
		Inventory: []uint{},
	}
	if user.Level < 1 {
		user.Level = 1
	}
	if err := h.repo.CreateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateUser})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser returns a user profile with decks.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := paramUint(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidUserID})
		return
	}
	user, err := h.repo.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateDeck stores a new named deck for the user.
func (h *Handler) CreateDeck(c *gin.Context) {
	id, ok := paramUint(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidUserID})
		return
	}
	var req CreateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	deck, err := service.CreateDeck(h.repo, id, req.Name, req.Cards)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deck)
}

// AddInventory adds an equipment item to the user's collection.
func (h *Handler) AddInventory(c *gin.Context) {
	id, ok := paramUint(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidUserID})
		return
	}
	var req AddInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EquipmentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	user, err := service.AddInventory(h.repo, id, req.EquipmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// EquipItems assigns inventory items into the six gear slots.
func (h *Handler) EquipItems(c *gin.Context) {
	id, ok := paramUint(c, "userID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidUserID})
		return
	}
	var req EquipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	user, err := service.EquipItems(h.repo, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
