// internal/adapters/httpapi/models.go
package httpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/egokay/storefront.git/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type CategoryResponse struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"document_id"`
	Name       string `json:"name"`
}

type ProductResponse struct {
	ID            int64             `json:"id"`
	DocumentID    string            `json:"document_id"`
	Name          string            `json:"name"`
	Price         decimal.Decimal   `json:"price"`
	StockQuantity int64             `json:"stock_quantity"`
	Description   string            `json:"description,omitempty"`
	Category      *CategoryResponse `json:"category,omitempty"`
	ImageURLs     []string          `json:"image_urls,omitempty"`
}

type CampaignResponse struct {
	ID          int64  `json:"id"`
	DocumentID  string `json:"document_id"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
}

type SelectQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"required"`
}

type SelectQuantityResponse struct {
	Quantity int64 `json:"quantity"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity"`
}

type CartItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type CheckoutRequest struct {
	CardNumber string `json:"card_number"`
	CVV        string `json:"cvv"`
	AddressID  int64  `json:"address_id"`
}

type CheckoutResponse struct {
	Order            OrderResponse `json:"order"`
	RedirectAfterMS  int64         `json:"redirect_after_ms"`
	RedirectLocation string        `json:"redirect_location"`
}

type ToggleFavoriteRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

type FavoriteResponse struct {
	ID         int64            `json:"id"`
	DocumentID string           `json:"document_id"`
	Product    *ProductResponse `json:"product,omitempty"`
}

type SaveAddressRequest struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title" binding:"required"`
	Country    string `json:"country" binding:"required"`
	City       string `json:"city" binding:"required"`
	District   string `json:"district" binding:"required"`
	Street     string `json:"street" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
}

type AddressResponse struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Country    string `json:"country"`
	City       string `json:"city"`
	District   string `json:"district"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

type AddPaymentMethodRequest struct {
	HolderName  string `json:"card_holder_name" binding:"required"`
	CardNumber  string `json:"card_number" binding:"required"`
	ExpiryMonth string `json:"expiry_month" binding:"required"`
	ExpiryYear  string `json:"expiry_year" binding:"required"`
	CVV         string `json:"cvv" binding:"required"`
}

// PaymentMethodResponse masks the card number down to its last four digits;
// the full number never leaves the store except inside a checkout request.
type PaymentMethodResponse struct {
	ID          int64           `json:"id"`
	DocumentID  string          `json:"document_id"`
	HolderName  string          `json:"card_holder_name"`
	CardNumber  string          `json:"card_number"`
	ExpiryMonth string          `json:"expiry_month"`
	ExpiryYear  string          `json:"expiry_year"`
	Balance     decimal.Decimal `json:"balance"`
}

type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderResponse struct {
	ID          int64               `json:"id"`
	DocumentID  string              `json:"document_id"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Items       []OrderItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type NoticeResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	ShownAt   time.Time `json:"shown_at"`
	DismissAt time.Time `json:"dismiss_at"`
}

func toCategoryResponse(category *domain.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{ID: category.ID, DocumentID: category.DocumentID, Name: category.Name}
}

func toProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		DocumentID:    product.DocumentID,
		Name:          product.Name,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Description:   product.Description,
		Category:      toCategoryResponse(product.Category),
		ImageURLs:     product.ImageURLs,
	}
}

func toCampaignResponse(campaign domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          campaign.ID,
		DocumentID:  campaign.DocumentID,
		ImageURL:    campaign.ImageURL,
		Description: campaign.Description,
	}
}

func toCartResponse(cart *domain.Cart) CartResponse {
	items := cart.Items()
	out := CartResponse{Items: make([]CartItemResponse, 0, len(items)), Total: cart.Total()}
	for _, item := range items {
		out.Items = append(out.Items, CartItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.Price,
			Quantity:    item.Quantity,
		})
	}
	return out
}

func toFavoriteResponse(favorite domain.Favorite) FavoriteResponse {
	out := FavoriteResponse{ID: favorite.ID, DocumentID: favorite.DocumentID}
	if favorite.Product != nil {
		product := toProductResponse(*favorite.Product)
		out.Product = &product
	}
	return out
}

func toAddressResponse(address domain.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		DocumentID: address.DocumentID,
		Title:      address.Title,
		Country:    address.Country,
		City:       address.City,
		District:   address.District,
		Street:     address.Street,
		PostalCode: address.PostalCode,
	}
}

func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "**** **** **** " + number[len(number)-4:]
}

func toPaymentMethodResponse(method domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:          method.ID,
		DocumentID:  method.DocumentID,
		HolderName:  method.HolderName,
		CardNumber:  maskCardNumber(method.CardNumber),
		ExpiryMonth: method.ExpiryMonth,
		ExpiryYear:  method.ExpiryYear,
		Balance:     method.Balance,
	}
}

func toOrderResponse(order domain.Order) OrderResponse {
	out := OrderResponse{
		ID:          order.ID,
		DocumentID:  order.DocumentID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
	for _, item := range order.Items {
		out.Items = append(out.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return out
}

func toNoticeResponse(notice domain.Notice) NoticeResponse {
	return NoticeResponse{
		ID:        notice.ID,
		Message:   notice.Message,
		Level:     string(notice.Level),
		ShownAt:   notice.ShownAt,
		DismissAt: notice.DismissAt,
	}
}
