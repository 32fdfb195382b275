package routes

import (
	"heritage_gold/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGoldPrice = "/gold-price"
	PathJewellery = "/jewellery"
	PathOldGold   = "/old-gold"
	PathCart      = "/cart"
)

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	rg.GET(PathGoldPrice, h.GetRates)
	rg.POST(PathGoldPrice, h.UpdateRates)
	rg.POST("/calculate-price", h.Calculate)

	oldGold := rg.Group(PathOldGold)
	{
		oldGold.GET("/profiles", h.Profiles)
		oldGold.POST("/assess", h.AssessOldGold)
	}
}

func addCatalogueRoutes(rg *gin.RouterGroup, catalogue *handlers.CatalogueHandler, guided *handlers.GuidedHandler) {
	jewellery := rg.Group(PathJewellery)
	{
		jewellery.GET("", catalogue.List)
		jewellery.POST("", catalogue.Create)
		jewellery.GET("/:item_id", catalogue.Get)
	}

	rg.POST("/guided/matches", guided.Match)
}

func addLeadRoutes(rg *gin.RouterGroup, lead *handlers.LeadHandler, cart *handlers.CartHandler) {
	rg.POST("/order-intent", lead.SubmitOrderIntent)
	rg.POST("/contact", lead.SubmitContact)

	c := rg.Group(PathCart)
	{
		c.GET("", cart.Get)
		c.DELETE("", cart.Clear)
		c.POST("/items", cart.Add)
		c.DELETE("/items/:item_id", cart.Remove)
		c.POST("/submit", cart.Submit)
	}
}

func addInfoRoutes(rg *gin.RouterGroup, h *handlers.InfoHandler) {
	rg.GET("/goldsmith", h.Goldsmith)
	rg.POST("/goldsmith", h.UpdateGoldsmith)
	rg.GET("/education", h.Education)
}
