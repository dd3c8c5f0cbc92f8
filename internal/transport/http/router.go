// Package http exposes the food ordering API over gin.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartsports "github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	menusports "github.com/hungryhub/food-order-api/internal/domains/menus/ports"
	ordersapp "github.com/hungryhub/food-order-api/internal/domains/orders/application"
)

// Handlers bundles the per-context APIs served by the router.
type Handlers struct {
	Carts  CartAPI
	Menus  MenuAPI
	Orders OrderAPI
}

// NewHandlers builds the handler set over the given services with a
// shared problem responder.
func NewHandlers(carts cartsports.Service, menus menusports.Service, orders *ordersapp.Service) Handlers {
	respond := newResponder()
	return Handlers{
		Carts:  NewCartAPI(carts, respond),
		Menus:  NewMenuAPI(menus, respond),
		Orders: NewOrderAPI(orders, respond),
	}
}

// NewRouter returns a gin engine with all API routes registered.
func NewRouter(handlers Handlers) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handlers)
}

// NewRouterWithGinEngine registers the API routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handlers Handlers) *gin.Engine {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")

	v1.GET("/users/:userId/cart", handlers.Carts.GetCart)
	v1.POST("/users/:userId/cart/items", handlers.Carts.AddItem)
	v1.DELETE("/users/:userId/cart/items", handlers.Carts.RemoveItem)
	v1.DELETE("/users/:userId/cart", handlers.Carts.ClearCart)
	v1.POST("/users/:userId/cart/checkout", handlers.Carts.PlaceOrder)

	v1.POST("/menus", handlers.Menus.CreateMenu)
	v1.GET("/menus/:menuId", handlers.Menus.GetMenu)
	v1.POST("/menus/:menuId/open", handlers.Menus.OpenMenu)
	v1.POST("/menus/:menuId/option-groups", handlers.Menus.AddOptionGroup)
	v1.POST("/menus/:menuId/option-groups/:groupId/options", handlers.Menus.AddOption)
	v1.DELETE("/menus/:menuId/option-groups/:groupId/options", handlers.Menus.RemoveOption)
	v1.PATCH("/menus/:menuId/option-groups/:groupId/options", handlers.Menus.RenameOption)

	v1.GET("/orders/:orderId", handlers.Orders.GetOrder)
	v1.GET("/users/:userId/orders", handlers.Orders.ListOrders)

	return router
}
