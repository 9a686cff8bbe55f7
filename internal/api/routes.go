package api

import (
	"github.com/fizennn/Seejam-Server/internal/constants"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every API route on the router. Catalog reads and
// user registration are public; everything acting on behalf of a user sits
// behind the auth middleware.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteCards, h.ListCards)
		apiRoutes.GET(constants.RouteCardByID, h.GetCard)
		apiRoutes.GET(constants.RouteNpcs, h.ListNpcs)
		apiRoutes.GET(constants.RouteEquipment, h.ListEquipment)
		apiRoutes.POST(constants.RouteUsers, h.CreateUser)

		protected := apiRoutes.Group("")
		protected.Use(AuthRequired())

		protected.GET(constants.RouteUserByID, h.GetUser)
		protected.POST(constants.RouteUserDecks, h.CreateDeck)
		protected.POST(constants.RouteUserInventory, h.AddInventory)
		protected.POST(constants.RouteUserEquip, h.EquipItems)

		protected.POST(constants.RouteDuels, h.CreateDuel)
		protected.GET(constants.RouteDuelByID, h.GetDuel)
		protected.POST(constants.RouteDuelPlayCard, h.PlayCard)
		protected.POST(constants.RouteDuelEndTurn, h.EndTurn)
	}
}
