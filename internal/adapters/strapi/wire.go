// internal/adapters/strapi/wire.go
package strapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/egokay/storefront.git/internal/domain"
)

// Wire documents mirror the store's loosely-typed resource shapes. They are
// parsed into domain types at this boundary so shape drift surfaces here and
// nowhere else.

type userDoc struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{ID: d.ID, Username: d.Username, Email: d.Email}
}

type imageDoc struct {
	URL     string `json:"url"`
	Formats struct {
		Thumbnail struct {
			URL string `json:"url"`
		} `json:"thumbnail"`
	} `json:"formats"`
}

// bestURL prefers the thumbnail rendition over the full asset.
func (d imageDoc) bestURL() string {
	if d.Formats.Thumbnail.URL != "" {
		return d.Formats.Thumbnail.URL
	}
	return d.URL
}

type categoryDoc struct {
	ID           int64  `json:"id"`
	DocumentID   string `json:"documentId"`
	CategoryName string `json:"category_name"`
}

func (d categoryDoc) toDomain() domain.Category {
	return domain.Category{ID: d.ID, DocumentID: d.DocumentID, Name: d.CategoryName}
}

type productDoc struct {
	ID            int64           `json:"id"`
	DocumentID    string          `json:"documentId"`
	ProductName   string          `json:"product_name"`
	Price         json.Number     `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	ProductDesc   json.RawMessage `json:"product_desc"`
	Categories    json.RawMessage `json:"categories"`
	ImageURL      []imageDoc      `json:"image_url"`
}

func (d productDoc) toDomain() (domain.Product, error) {
	price, err := parseAmount(d.Price, "price")
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d: %w", d.ID, err)
	}
	product := domain.Product{
		ID:            d.ID,
		DocumentID:    d.DocumentID,
		Name:          d.ProductName,
		Price:         price,
		StockQuantity: d.StockQuantity,
		Description:   flattenRichText(d.ProductDesc),
		Category:      parseCategoryRelation(d.Categories),
	}
	for _, img := range d.ImageURL {
		if u := img.bestURL(); u != "" {
			product.ImageURLs = append(product.ImageURLs, u)
		}
	}
	return product, nil
}

type campaignDoc struct {
	ID                  int64     `json:"id"`
	DocumentID          string    `json:"documentId"`
	CampaignDescription string    `json:"campaign_description"`
	CampaignImage       *imageDoc `json:"campaign_image"`
}

func (d campaignDoc) toDomain() domain.Campaign {
	campaign := domain.Campaign{
		ID:          d.ID,
		DocumentID:  d.DocumentID,
		Description: d.CampaignDescription,
	}
	if d.CampaignImage != nil {
		campaign.ImageURL = d.CampaignImage.bestURL()
	}
	return campaign
}

type favoriteDoc struct {
	ID         int64       `json:"id"`
	DocumentID string      `json:"documentId"`
	User       *userDoc    `json:"user"`
	Product    *productDoc `json:"product"`
}

func (d favoriteDoc) toDomain() (domain.Favorite, error) {
	favorite := domain.Favorite{ID: d.ID, DocumentID: d.DocumentID}
	if d.User != nil {
		favorite.UserID = d.User.ID
	}
	if d.Product != nil {
		product, err := d.Product.toDomain()
		if err != nil {
			return domain.Favorite{}, err
		}
		favorite.Product = &product
	}
	return favorite, nil
}

type addressDoc struct {
	ID           int64    `json:"id"`
	DocumentID   string   `json:"documentId"`
	AddressTitle string   `json:"address_title"`
	Country      string   `json:"country"`
	City         string   `json:"city"`
	District     string   `json:"district"`
	Street       string   `json:"street"`
	PostalCode   string   `json:"postal_code"`
	User         *userDoc `json:"users_permissions_user"`
}

func (d addressDoc) toDomain() domain.Address {
	address := domain.Address{
		ID:         d.ID,
		DocumentID: d.DocumentID,
		Title:      d.AddressTitle,
		Country:    d.Country,
		City:       d.City,
		District:   d.District,
		Street:     d.Street,
		PostalCode: d.PostalCode,
	}
	if d.User != nil {
		address.UserID = d.User.ID
	}
	return address
}

type paymentMethodDoc struct {
	ID             int64       `json:"id"`
	DocumentID     string      `json:"documentId"`
	CardHolderName string      `json:"card_holder_name"`
	CardNumber     string      `json:"card_number"`
	ExpiryMonth    json.Number `json:"expiry_month"`
	ExpiryYear     json.Number `json:"expiry_year"`
	CVV            string      `json:"cvv"`
	UnitPrice      json.Number `json:"unit_price"`
	User           *userDoc    `json:"users_permissions_user"`
}

func (d paymentMethodDoc) toDomain() (domain.PaymentMethod, error) {
	balance, err := parseAmount(d.UnitPrice, "unit_price")
	if err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("payment method %d: %w", d.ID, err)
	}
	method := domain.PaymentMethod{
		ID:          d.ID,
		DocumentID:  d.DocumentID,
		HolderName:  d.CardHolderName,
		CardNumber:  d.CardNumber,
		ExpiryMonth: d.ExpiryMonth.String(),
		ExpiryYear:  d.ExpiryYear.String(),
		CVV:         d.CVV,
		Balance:     balance,
	}
	if d.User != nil {
		method.UserID = d.User.ID
	}
	return method, nil
}

type orderItemDoc struct {
	ID         int64       `json:"id"`
	DocumentID string      `json:"documentId"`
	Quantity   int64       `json:"quantity"`
	UnitPrice  json.Number `json:"unit_price"`
	Products   *productDoc `json:"products"`
}

func (d orderItemDoc) toDomain() (domain.OrderItem, error) {
	unitPrice, err := parseAmount(d.UnitPrice, "unit_price")
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("order item %d: %w", d.ID, err)
	}
	item := domain.OrderItem{
		ID:         d.ID,
		DocumentID: d.DocumentID,
		Quantity:   d.Quantity,
		UnitPrice:  unitPrice,
	}
	if d.Products != nil {
		item.ProductID = d.Products.ID
	}
	return item, nil
}

type orderDoc struct {
	ID          int64          `json:"id"`
	DocumentID  string         `json:"documentId"`
	OrderStatus string         `json:"order_status"`
	TotalAmount json.Number    `json:"total_amount"`
	CreatedAt   time.Time      `json:"createdAt"`
	User        *userDoc       `json:"users_permissions_user"`
	UserAddress *addressDoc    `json:"user_address"`
	OrderItems  []orderItemDoc `json:"order_items"`
}

func (d orderDoc) toDomain() (domain.Order, error) {
	total, err := parseAmount(d.TotalAmount, "total_amount")
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %d: %w", d.ID, err)
	}
	order := domain.Order{
		ID:          d.ID,
		DocumentID:  d.DocumentID,
		Status:      d.OrderStatus,
		TotalAmount: total,
		CreatedAt:   d.CreatedAt,
	}
	if d.User != nil {
		order.UserID = d.User.ID
	}
	if d.UserAddress != nil {
		address := d.UserAddress.toDomain()
		order.Address = &address
	}
	for _, itemDoc := range d.OrderItems {
		item, err := itemDoc.toDomain()
		if err != nil {
			return domain.Order{}, err
		}
		item.OrderID = d.ID
		order.Items = append(order.Items, item)
	}
	return order, nil
}

// parseAmount turns a wire number into an exact decimal. An absent field
// parses as zero.
func parseAmount(n json.Number, field string) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", field, n, err)
	}
	return amount, nil
}

// amount renders a decimal as a raw JSON number for request payloads.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// flattenRichText reduces a rich-text description to plain text. The field
// is either a plain string or an array of paragraph blocks with text
// children.
func flattenRichText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}
	var blocks []struct {
		Children []struct {
			Text string `json:"text"`
		} `json:"children"`
	}
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return ""
	}
	var paragraphs []string
	for _, block := range blocks {
		var texts []string
		for _, child := range block.Children {
			if child.Text != "" {
				texts = append(texts, child.Text)
			}
		}
		if len(texts) > 0 {
			paragraphs = append(paragraphs, strings.Join(texts, " "))
		}
	}
	return strings.Join(paragraphs, "\n")
}

// parseCategoryRelation accepts the relation either as a single object or as
// an array, taking the first entry.
func parseCategoryRelation(raw json.RawMessage) *domain.Category {
	if len(raw) == 0 {
		return nil
	}
	var single categoryDoc
	if err := json.Unmarshal(raw, &single); err == nil && single.ID != 0 {
		category := single.toDomain()
		return &category
	}
	var many []categoryDoc
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		category := many[0].toDomain()
		return &category
	}
	return nil
}
