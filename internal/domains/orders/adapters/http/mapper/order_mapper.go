package mapper

import (
	"time"

	"github.com/vnstore/go-shop-api-server/internal/domains/orders/application/types"
	"github.com/vnstore/go-shop-api-server/internal/domains/orders/domain"
)

// Product is the embedded catalog view attached to an order line when the
// product still exists.
type Product struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Price        int64    `json:"price"`
	Discount     int      `json:"discount"`
	CurrentPrice int64    `json:"currentPrice"`
	Category     string   `json:"category,omitempty"`
	Images       []string `json:"images,omitempty"`
}

// OrderItem is one frozen line of an order as rendered over HTTP.
type OrderItem struct {
	ProductID int64    `json:"productId"`
	Quantity  int64    `json:"quantity"`
	UnitPrice int64    `json:"unitPrice"`
	Product   *Product `json:"product,omitempty"`
}

// ShippingDetail is the HTTP shape of the delivery address.
type ShippingDetail struct {
	Address  string `json:"address" binding:"required"`
	Province string `json:"province" binding:"required"`
	District string `json:"district" binding:"required"`
	Ward     string `json:"ward" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email,omitempty"`
}

// Order is the HTTP representation of an order.
type Order struct {
	ID             int64          `json:"id"`
	CartID         int64          `json:"cartId"`
	Products       []OrderItem    `json:"products"`
	Status         string         `json:"status"`
	ShippingDetail ShippingDetail `json:"shippingDetail"`
	PaymentMethod  string         `json:"paymentMethod"`
	Note           string         `json:"note,omitempty"`
	TotalPrice     int64          `json:"totalPrice"`
	OrderTime      time.Time      `json:"orderTime"`
	ConfirmTime    *time.Time     `json:"confirmTime,omitempty"`
	DeliveryTime   *time.Time     `json:"deliveryTime,omitempty"`
	SuccessTime    *time.Time     `json:"successTime,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CreateOrderRequest is the payload for placing an order from a cart.
type CreateOrderRequest struct {
	CartID         int64          `json:"cartId" binding:"required"`
	ShippingDetail ShippingDetail `json:"shippingDetail" binding:"required"`
	PaymentMethod  string         `json:"paymentMethod" binding:"required"`
	Note           string         `json:"note,omitempty"`
}

// AdvanceOrderRequest is the payload for moving an order along its lifecycle.
type AdvanceOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

// ToCreateInput translates the HTTP payload into the application command.
func ToCreateInput(payload CreateOrderRequest, idempotencyKey string) types.CreateOrderInput {
	return types.CreateOrderInput{
		CartID:         payload.CartID,
		Shipping:       payload.ShippingDetail.toDomain(),
		Payment:        payload.PaymentMethod,
		Note:           payload.Note,
		IdempotencyKey: idempotencyKey,
	}
}

// ToAdvanceInput translates the HTTP payload into the application command.
func ToAdvanceInput(orderID int64, payload AdvanceOrderRequest) types.AdvanceOrderInput {
	return types.AdvanceOrderInput{OrderID: orderID, Target: payload.Status}
}

// FromView renders an order read model for HTTP responses.
func FromView(view *types.OrderView) Order {
	items := make([]OrderItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Product:   fromCatalogProduct(item.Product),
		})
	}
	return Order{
		ID:       view.ID,
		CartID:   view.CartID,
		Products: items,
		Status:   string(view.Status),
		ShippingDetail: ShippingDetail{
			Address:  view.Shipping.Address,
			Province: view.Shipping.Province,
			District: view.Shipping.District,
			Ward:     view.Shipping.Ward,
			Name:     view.Shipping.Name,
			Phone:    view.Shipping.Phone,
			Email:    view.Shipping.Email,
		},
		PaymentMethod: string(view.Payment),
		Note:          view.Note,
		TotalPrice:    view.Total,
		OrderTime:     view.OrderTime,
		ConfirmTime:   view.ConfirmTime,
		DeliveryTime:  view.DeliveryTime,
		SuccessTime:   view.SuccessTime,
		CreatedAt:     view.Metadata.CreatedAt,
		UpdatedAt:     view.Metadata.UpdatedAt,
	}
}

// FromViewList renders a list of orders.
func FromViewList(views []*types.OrderView) []Order {
	orders := make([]Order, 0, len(views))
	for _, view := range views {
		orders = append(orders, FromView(view))
	}
	return orders
}

func fromCatalogProduct(product *types.CatalogProduct) *Product {
	if product == nil {
		return nil
	}
	return &Product{
		ID:           product.ID,
		Name:         product.Name,
		Price:        product.Price,
		Discount:     product.Discount,
		CurrentPrice: product.CurrentPrice,
		Category:     product.Category,
		Images:       product.Images,
	}
}

func (d ShippingDetail) toDomain() domain.ShippingDetail {
	return domain.ShippingDetail{
		Address:  d.Address,
		Province: d.Province,
		District: d.District,
		Ward:     d.Ward,
		Name:     d.Name,
		Phone:    d.Phone,
		Email:    d.Email,
	}
}
