package api

import (
	"github.com/fizennn/Seejam-Server/internal/catalog"
	"github.com/fizennn/Seejam-Server/internal/service"
	"github.com/fizennn/Seejam-Server/internal/storage"
)

// Handler groups all HTTP handlers and their shared dependencies.
type Handler struct {
	repo     storage.Repository
	cards    *catalog.Cards
	shuffler service.Shuffler
}

// NewHandler creates a Handler with the given repository, card cache and
// shuffle source.
func NewHandler(repo storage.Repository, cards *catalog.Cards, shuffler service.Shuffler) *Handler {
	return &Handler{repo: repo, cards: cards, shuffler: shuffler}
}
