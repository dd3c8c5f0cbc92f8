package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hungryhub/food-order-api/internal/domains/menus/ports"
	apierrors "github.com/hungryhub/food-order-api/internal/shared/errors"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

// MenuAPI wires HTTP transport with the menus bounded context service.
type MenuAPI struct {
	service ports.Service
	respond *apierrors.Responder
}

// NewMenuAPI creates a MenuAPI backed by the provided service.
func NewMenuAPI(service ports.Service, respond *apierrors.Responder) MenuAPI {
	return MenuAPI{service: service, respond: respond}
}

type createMenuRequest struct {
	ShopID      string `json:"shopId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   string `json:"basePrice" binding:"required"`
}

type addOptionGroupRequest struct {
	Name     string `json:"name" binding:"required"`
	Required bool   `json:"required"`
}

type optionRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

type renameOptionRequest struct {
	Name    string `json:"name" binding:"required"`
	Price   string `json:"price" binding:"required"`
	NewName string `json:"newName" binding:"required"`
}

// Post /v1/menus
// Creates a closed menu for a shop.
func (api *MenuAPI) CreateMenu(c *gin.Context) {
	var payload createMenuRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.respond.BadRequest(c, err.Error())
		return
	}
	shopID, err := id.ShopIDFrom(payload.ShopID)
	if err != nil {
		api.respond.BadRequest(c, "shopId must not be blank")
		return
	}
	menu, err := api.service.CreateMenu(c.Request.Context(), ports.CreateMenuInput{
		ShopID:      shopID,
		Name:        payload.Name,
		Description: payload.Description,
		BasePrice:   payload.BasePrice,
	})
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successEnvelope("menu created", menu.ID().String()))
}

// Get /v1/menus/:menuId
// Loads a menu with its option groups.
func (api *MenuAPI) GetMenu(c *gin.Context) {
	menuID, ok := api.menuIDParam(c)
	if !ok {
		return
	}
	menu, err := api.service.GetMenu(c.Request.Context(), menuID)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(menu))
}

// Post /v1/menus/:menuId/option-groups
// Adds an option group to a menu.
func (api *MenuAPI) AddOptionGroup(c *gin.Context) {
	menuID, ok := api.menuIDParam(c)
	if !ok {
		return
	}
	var payload addOptionGroupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.respond.BadRequest(c, err.Error())
		return
	}
	menu, err := api.service.AddOptionGroup(c.Request.Context(), menuID, payload.Name, payload.Required)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(menu))
}

// Post /v1/menus/:menuId/option-groups/:groupId/options
// Adds an option to a group.
func (api *MenuAPI) AddOption(c *gin.Context) {
	menuID, groupID, ok := api.groupParams(c)
	if !ok {
		return
	}
	var payload optionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.respond.BadRequest(c, err.Error())
		return
	}
	menu, err := api.service.AddOption(c.Request.Context(), menuID, groupID, ports.OptionInput{
		Name:  payload.Name,
		Price: payload.Price,
	})
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(menu))
}

// Delete /v1/menus/:menuId/option-groups/:groupId/options
// Removes the option matching the (name, price) pair.
func (api *MenuAPI) RemoveOption(c *gin.Context) {
	menuID, groupID, ok := api.groupParams(c)
	if !ok {
		return
	}
	var payload optionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.respond.BadRequest(c, err.Error())
		return
	}
	menu, err := api.service.RemoveOption(c.Request.Context(), menuID, groupID, ports.OptionInput{
		Name:  payload.Name,
		Price: payload.Price,
	})
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(menu))
}

// Patch /v1/menus/:menuId/option-groups/:groupId/options
// Renames the option matching the (name, price) pair.
func (api *MenuAPI) RenameOption(c *gin.Context) {
	menuID, groupID, ok := api.groupParams(c)
	if !ok {
		return
	}
	var payload renameOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.respond.BadRequest(c, err.Error())
		return
	}
	menu, err := api.service.RenameOption(c.Request.Context(), menuID, groupID, ports.OptionInput{
		Name:  payload.Name,
		Price: payload.Price,
	}, payload.NewName)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(menu))
}

// Post /v1/menus/:menuId/open
// Publishes the menu after the eligibility checks pass.
func (api *MenuAPI) OpenMenu(c *gin.Context) {
	menuID, ok := api.menuIDParam(c)
	if !ok {
		return
	}
	menu, err := api.service.OpenMenu(c.Request.Context(), menuID)
	if err != nil {
		api.respond.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, successEnvelope("menu opened", menu.ID().String()))
}

func (api *MenuAPI) menuIDParam(c *gin.Context) (id.MenuID, bool) {
	menuID, err := id.MenuIDFrom(c.Param("menuId"))
	if err != nil {
		api.respond.BadRequest(c, "menuId must not be blank")
		return id.MenuID{}, false
	}
	return menuID, true
}

func (api *MenuAPI) groupParams(c *gin.Context) (id.MenuID, id.OptionGroupID, bool) {
	menuID, ok := api.menuIDParam(c)
	if !ok {
		return id.MenuID{}, id.OptionGroupID{}, false
	}
	groupID, err := id.OptionGroupIDFrom(c.Param("groupId"))
	if err != nil {
		api.respond.BadRequest(c, "groupId must not be blank")
		return id.MenuID{}, id.OptionGroupID{}, false
	}
	return menuID, groupID, true
}
