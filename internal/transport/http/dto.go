package http

import (
	"time"

	cartsdomain "github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	menusdomain "github.com/hungryhub/food-order-api/internal/domains/menus/domain"
	ordersdomain "github.com/hungryhub/food-order-api/internal/domains/orders/domain"
)

// resultEnvelope acknowledges a state-changing request.
type resultEnvelope struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const statusSuccess = "SUCCESS"

func successEnvelope(message, id string) resultEnvelope {
	return resultEnvelope{
		Status:    statusSuccess,
		Message:   message,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}

type cartLineResponse struct {
	MenuID    string   `json:"menuId"`
	OptionIDs []string `json:"optionIds,omitempty"`
	Quantity  int      `json:"quantity"`
}

type cartResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"userId"`
	ShopID     string             `json:"shopId,omitempty"`
	Items      []cartLineResponse `json:"items"`
	TotalPrice string             `json:"totalPrice"`
}

func toCartResponse(cart *cartsdomain.Cart) cartResponse {
	lines := cart.LineItems()
	items := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		optionIDs := line.OptionIDs()
		ids := make([]string, 0, len(optionIDs))
		for _, optionID := range optionIDs {
			ids = append(ids, optionID.String())
		}
		items = append(items, cartLineResponse{
			MenuID:    line.MenuID().String(),
			OptionIDs: ids,
			Quantity:  line.Quantity(),
		})
	}
	resp := cartResponse{
		ID:         cart.ID().String(),
		UserID:     cart.UserID().String(),
		Items:      items,
		TotalPrice: cart.TotalPrice().String(),
	}
	if !cart.ShopID().IsZero() {
		resp.ShopID = cart.ShopID().String()
	}
	return resp
}

type optionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type optionGroupResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Required bool             `json:"required"`
	Options  []optionResponse `json:"options"`
}

type menuResponse struct {
	ID           string                `json:"id"`
	ShopID       string                `json:"shopId"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	BasePrice    string                `json:"basePrice"`
	Open         bool                  `json:"open"`
	OptionGroups []optionGroupResponse `json:"optionGroups"`
}

func toMenuResponse(menu *menusdomain.Menu) menuResponse {
	groups := menu.OptionGroups()
	groupResponses := make([]optionGroupResponse, 0, len(groups))
	for _, group := range groups {
		options := group.Options()
		optionResponses := make([]optionResponse, 0, len(options))
		for _, option := range options {
			optionResponses = append(optionResponses, optionResponse{
				ID:    option.IdentityOn(menu.ID()).String(),
				Name:  option.Name(),
				Price: option.Price().String(),
			})
		}
		groupResponses = append(groupResponses, optionGroupResponse{
			ID:       group.ID().String(),
			Name:     group.Name(),
			Required: group.Required(),
			Options:  optionResponses,
		})
	}
	return menuResponse{
		ID:           menu.ID().String(),
		ShopID:       menu.ShopID().String(),
		Name:         menu.Name(),
		Description:  menu.Description(),
		BasePrice:    menu.BasePrice().String(),
		Open:         menu.IsOpen(),
		OptionGroups: groupResponses,
	}
}

type orderOptionResponse struct {
	OptionID string `json:"optionId"`
	Name     string `json:"name"`
	Price    string `json:"price"`
}

type orderLineResponse struct {
	MenuID    string                `json:"menuId"`
	MenuName  string                `json:"menuName"`
	Options   []orderOptionResponse `json:"options,omitempty"`
	Quantity  int                   `json:"quantity"`
	LinePrice string                `json:"linePrice"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"userId"`
	ShopID     string              `json:"shopId"`
	Items      []orderLineResponse `json:"items"`
	TotalPrice string              `json:"totalPrice"`
	OrderTime  time.Time           `json:"orderTime"`
}

func toOrderResponse(order *ordersdomain.Order) orderResponse {
	lines := order.LineItems()
	items := make([]orderLineResponse, 0, len(lines))
	for _, line := range lines {
		options := line.Options()
		optionResponses := make([]orderOptionResponse, 0, len(options))
		for _, option := range options {
			optionResponses = append(optionResponses, orderOptionResponse{
				OptionID: option.OptionID.String(),
				Name:     option.Name,
				Price:    option.Price.String(),
			})
		}
		items = append(items, orderLineResponse{
			MenuID:    line.MenuID().String(),
			MenuName:  line.MenuName(),
			Options:   optionResponses,
			Quantity:  line.Quantity(),
			LinePrice: line.LinePrice().String(),
		})
	}
	return orderResponse{
		ID:         order.ID().String(),
		UserID:     order.UserID().String(),
		ShopID:     order.ShopID().String(),
		Items:      items,
		TotalPrice: order.TotalPrice().String(),
		OrderTime:  order.OrderTime(),
	}
}

func toOrderResponses(orders []*ordersdomain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	return out
}
