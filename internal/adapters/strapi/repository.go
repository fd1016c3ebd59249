// internal/adapters/strapi/repository.go
package strapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

type dataWrap struct {
	Data interface{} `json:"data"`
}

// Repository implements ports.StoreRepositoryPort over the store's REST API.
type Repository struct {
	client *Client
}

func NewRepository(client *Client) ports.StoreRepositoryPort {
	return &Repository{client: client}
}

func (r *Repository) ListProducts(ctx context.Context, token string, categoryID int64) ([]domain.Product, error) {
	query := populateAll()
	if categoryID != 0 {
		eq(query, strconv.FormatInt(categoryID, 10), "categories", "id")
	}
	var out struct {
		Data []productDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/products", query, &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]domain.Product, 0, len(out.Data))
	for _, doc := range out.Data {
		product, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *Repository) GetProduct(ctx context.Context, token string, id int64) (*domain.Product, error) {
	query := populateAll()
	eq(query, strconv.FormatInt(id, 10), "id")
	var out struct {
		Data []productDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/products", query, &out); err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	product, err := out.Data[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) FindProductByName(ctx context.Context, token, name string) (*domain.Product, error) {
	query := url.Values{}
	query.Set("populate", "categories")
	eq(query, name, "product_name")
	var out struct {
		Data []productDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/products", query, &out); err != nil {
		return nil, fmt.Errorf("find product %q: %w", name, err)
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	product, err := out.Data[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func productPayload(product *domain.Product) map[string]interface{} {
	payload := map[string]interface{}{
		"product_name":   product.Name,
		"price":          amount(product.Price),
		"stock_quantity": product.StockQuantity,
	}
	if product.Description != "" {
		payload["product_desc"] = product.Description
	}
	if product.Category != nil {
		payload["categories"] = []int64{product.Category.ID}
	}
	return payload
}

func (r *Repository) CreateProduct(ctx context.Context, token string, product *domain.Product) (*domain.Product, error) {
	var out struct {
		Data productDoc `json:"data"`
	}
	if err := r.client.post(ctx, token, "/api/products", dataWrap{Data: productPayload(product)}, &out); err != nil {
		return nil, fmt.Errorf("create product %q: %w", product.Name, err)
	}
	created, err := out.Data.toDomain()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, token string, product *domain.Product) error {
	path := "/api/products/" + url.PathEscape(product.DocumentID)
	if err := r.client.put(ctx, token, path, dataWrap{Data: productPayload(product)}, nil); err != nil {
		return fmt.Errorf("update product %q: %w", product.Name, err)
	}
	return nil
}

func (r *Repository) UpdateProductStock(ctx context.Context, token, documentID string, stock int64) error {
	path := "/api/products/" + url.PathEscape(documentID)
	payload := dataWrap{Data: map[string]interface{}{"stock_quantity": stock}}
	if err := r.client.put(ctx, token, path, payload, nil); err != nil {
		return fmt.Errorf("update stock of product %s: %w", documentID, err)
	}
	return nil
}

func (r *Repository) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	var out struct {
		Data []categoryDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/categories", nil, &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]domain.Category, 0, len(out.Data))
	for _, doc := range out.Data {
		categories = append(categories, doc.toDomain())
	}
	return categories, nil
}

func (r *Repository) FindCategoryByName(ctx context.Context, token, name string) (*domain.Category, error) {
	query := url.Values{}
	eq(query, name, "category_name")
	var out struct {
		Data []categoryDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/categories", query, &out); err != nil {
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	category := out.Data[0].toDomain()
	return &category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, token, name string) (*domain.Category, error) {
	payload := dataWrap{Data: map[string]interface{}{"category_name": name}}
	var out struct {
		Data categoryDoc `json:"data"`
	}
	if err := r.client.post(ctx, token, "/api/categories", payload, &out); err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	category := out.Data.toDomain()
	return &category, nil
}

func (r *Repository) ListCampaigns(ctx context.Context, token string) ([]domain.Campaign, error) {
	var out struct {
		Data []campaignDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/campaigns", populateAll(), &out); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns := make([]domain.Campaign, 0, len(out.Data))
	for _, doc := range out.Data {
		campaigns = append(campaigns, doc.toDomain())
	}
	return campaigns, nil
}

func (r *Repository) GetCampaign(ctx context.Context, token, documentID string) (*domain.Campaign, error) {
	query := populateAll()
	eq(query, documentID, "documentId")
	var out struct {
		Data []campaignDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/campaigns", query, &out); err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", documentID, err)
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	campaign := out.Data[0].toDomain()
	return &campaign, nil
}

func (r *Repository) ListFavorites(ctx context.Context, token string, userID int64) ([]domain.Favorite, error) {
	query := populateAll()
	eq(query, strconv.FormatInt(userID, 10), "user", "id")
	var out struct {
		Data []favoriteDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/favorites", query, &out); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	favorites := make([]domain.Favorite, 0, len(out.Data))
	for _, doc := range out.Data {
		favorite, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}
	return favorites, nil
}

func (r *Repository) FindFavorite(ctx context.Context, token string, userID, productID int64) (*domain.Favorite, error) {
	query := url.Values{}
	eq(query, strconv.FormatInt(userID, 10), "user", "id")
	eq(query, strconv.FormatInt(productID, 10), "product", "id")
	var out struct {
		Data []favoriteDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/favorites", query, &out); err != nil {
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	favorite, err := out.Data[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *Repository) CreateFavorite(ctx context.Context, token string, userID, productID int64) (*domain.Favorite, error) {
	payload := dataWrap{Data: map[string]interface{}{
		"user":    userID,
		"product": productID,
	}}
	var out struct {
		Data favoriteDoc `json:"data"`
	}
	if err := r.client.post(ctx, token, "/api/favorites", payload, &out); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	favorite, err := out.Data.toDomain()
	if err != nil {
		return nil, err
	}
	favorite.UserID = userID
	return &favorite, nil
}

func (r *Repository) DeleteFavorite(ctx context.Context, token, documentID string) error {
	if err := r.client.delete(ctx, token, "/api/favorites/"+url.PathEscape(documentID)); err != nil {
		return fmt.Errorf("delete favorite %s: %w", documentID, err)
	}
	return nil
}

func (r *Repository) ListAddresses(ctx context.Context, token string, userID int64) ([]domain.Address, error) {
	query := populateAll()
	eq(query, strconv.FormatInt(userID, 10), "users_permissions_user", "id")
	var out struct {
		Data []addressDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/user-addresses", query, &out); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	addresses := make([]domain.Address, 0, len(out.Data))
	for _, doc := range out.Data {
		addresses = append(addresses, doc.toDomain())
	}
	return addresses, nil
}

func addressPayload(address *domain.Address) map[string]interface{} {
	return map[string]interface{}{
		"address_title":          address.Title,
		"country":                address.Country,
		"city":                   address.City,
		"district":               address.District,
		"street":                 address.Street,
		"postal_code":            address.PostalCode,
		"users_permissions_user": address.UserID,
	}
}

func (r *Repository) CreateAddress(ctx context.Context, token string, address *domain.Address) (*domain.Address, error) {
	var out struct {
		Data addressDoc `json:"data"`
	}
	if err := r.client.post(ctx, token, "/api/user-addresses", dataWrap{Data: addressPayload(address)}, &out); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	created := out.Data.toDomain()
	created.UserID = address.UserID
	return &created, nil
}

func (r *Repository) UpdateAddress(ctx context.Context, token string, address *domain.Address) error {
	path := "/api/user-addresses/" + url.PathEscape(address.DocumentID)
	if err := r.client.put(ctx, token, path, dataWrap{Data: addressPayload(address)}, nil); err != nil {
		return fmt.Errorf("update address %s: %w", address.DocumentID, err)
	}
	return nil
}

func (r *Repository) DeleteAddress(ctx context.Context, token, documentID string) error {
	if err := r.client.delete(ctx, token, "/api/user-addresses/"+url.PathEscape(documentID)); err != nil {
		return fmt.Errorf("delete address %s: %w", documentID, err)
	}
	return nil
}

func (r *Repository) ListPaymentMethods(ctx context.Context, token string, userID int64) ([]domain.PaymentMethod, error) {
	query := url.Values{}
	eq(query, strconv.FormatInt(userID, 10), "users_permissions_user", "id")
	var out struct {
		Data []paymentMethodDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/payment-methods", query, &out); err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	methods := make([]domain.PaymentMethod, 0, len(out.Data))
	for _, doc := range out.Data {
		method, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	return methods, nil
}

func (r *Repository) FindPaymentMethodByCard(ctx context.Context, token, cardNumber, cvv string) (*domain.PaymentMethod, error) {
	query := url.Values{}
	eq(query, cardNumber, "card_number")
	eq(query, cvv, "cvv")
	var out struct {
		Data []paymentMethodDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/payment-methods", query, &out); err != nil {
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	method, err := out.Data[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *Repository) CreatePaymentMethod(ctx context.Context, token string, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	payload := dataWrap{Data: map[string]interface{}{
		"card_holder_name":       method.HolderName,
		"card_number":            method.CardNumber,
		"expiry_month":           method.ExpiryMonth,
		"expiry_year":            method.ExpiryYear,
		"cvv":                    method.CVV,
		"unit_price":             amount(method.Balance),
		"users_permissions_user": method.UserID,
	}}
	var out struct {
		Data paymentMethodDoc `json:"data"`
	}
	if err := r.client.post(ctx, token, "/api/payment-methods", payload, &out); err != nil {
		return nil, fmt.Errorf("create payment method: %w", err)
	}
	created, err := out.Data.toDomain()
	if err != nil {
		return nil, err
	}
	created.UserID = method.UserID
	return &created, nil
}

func (r *Repository) UpdatePaymentMethodBalance(ctx context.Context, token, documentID string, balance decimal.Decimal) error {
	path := "/api/payment-methods/" + url.PathEscape(documentID)
	payload := dataWrap{Data: map[string]interface{}{"unit_price": amount(balance)}}
	if err := r.client.put(ctx, token, path, payload, nil); err != nil {
		return fmt.Errorf("update balance of payment method %s: %w", documentID, err)
	}
	return nil
}

func (r *Repository) DeletePaymentMethod(ctx context.Context, token, documentID string) error {
	if err := r.client.delete(ctx, token, "/api/payment-methods/"+url.PathEscape(documentID)); err != nil {
		return fmt.Errorf("delete payment method %s: %w", documentID, err)
	}
	return nil
}

func (r *Repository) ListOrders(ctx context.Context, token string, userID int64) ([]domain.Order, error) {
	query := populateAll()
	eq(query, strconv.FormatInt(userID, 10), "users_permissions_user", "id")
	var out struct {
		Data []orderDoc `json:"data"`
	}
	if err := r.client.get(ctx, token, "/api/orders", query, &out); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]domain.Order, 0, len(out.Data))
	for _, doc := range out.Data {
		order, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) CreateOrder(ctx context.Context, token string, order *domain.Order) (*domain.Order, error) {
	payload := dataWrap{Data: map[string]interface{}{
		"users_permissions_user": order.UserID,
		"user_address":           order.Address.ID,
		"order_status":           order.Status,
		"total_amount":           amount(order.TotalAmount),
	}}
	var out struct {
		Data orderDoc `json:"data"`
	}
	if err := r.client.post(ctx, token, "/api/orders", payload, &out); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	created, err := out.Data.toDomain()
	if err != nil {
		return nil, err
	}
	created.UserID = order.UserID
	if created.Address == nil {
		created.Address = order.Address
	}
	return &created, nil
}

func (r *Repository) CreateOrderItem(ctx context.Context, token string, item *domain.OrderItem) (*domain.OrderItem, error) {
	payload := dataWrap{Data: map[string]interface{}{
		"order":      item.OrderID,
		"products":   item.ProductID,
		"quantity":   item.Quantity,
		"unit_price": amount(item.UnitPrice),
	}}
	var out struct {
		Data orderItemDoc `json:"data"`
	}
	if err := r.client.post(ctx, token, "/api/order-items", payload, &out); err != nil {
		return nil, fmt.Errorf("create order item: %w", err)
	}
	created, err := out.Data.toDomain()
	if err != nil {
		return nil, err
	}
	created.OrderID = item.OrderID
	created.ProductID = item.ProductID
	return &created, nil
}
