// cmd/syncer/main.go
//
// Syncer loads a product catalog file into the store: categories are created
// on demand by name, products are upserted by product name.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/egokay/storefront.git/internal/adapters/strapi"
	"github.com/egokay/storefront.git/internal/config"
	"github.com/egokay/storefront.git/internal/domain"
	"github.com/egokay/storefront.git/internal/ports"
)

type catalogFile struct {
	Products []catalogProduct `json:"products"`
}

type catalogProduct struct {
	Name          string      `json:"product_name"`
	Price         json.Number `json:"price"`
	StockQuantity int64       `json:"stock_quantity"`
	Description   string      `json:"product_desc"`
	Categories    struct {
		CategoryName string `json:"category_name"`
	} `json:"categories"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load env variables", err)
	}
	cfg := config.Load()

	file := flag.String("file", "products.json", "catalog file to sync")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read catalog file: %v", err)
	}
	var catalog catalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Fatalf("failed to parse catalog file: %v", err)
	}

	client := strapi.NewClient(cfg.StoreURL, 30*time.Second)
	repo := strapi.NewRepository(client)

	ctx := context.Background()
	for _, entry := range catalog.Products {
		if err := syncProduct(ctx, repo, cfg.StoreAPIToken, entry); err != nil {
			log.Fatalf("failed to sync %q: %v", entry.Name, err)
		}
	}
	log.Printf("synced %d products", len(catalog.Products))
}

func syncProduct(ctx context.Context, repo ports.StoreRepositoryPort, token string, entry catalogProduct) error {
	category, err := getOrCreateCategory(ctx, repo, token, entry.Categories.CategoryName)
	if err != nil {
		return err
	}

	price, err := decimal.NewFromString(entry.Price.String())
	if err != nil {
		return fmt.Errorf("parse price %q: %w", entry.Price, err)
	}
	product := &domain.Product{
		Name:          entry.Name,
		Price:         price,
		StockQuantity: entry.StockQuantity,
		Description:   entry.Description,
		Category:      category,
	}

	existing, err := repo.FindProductByName(ctx, token, entry.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		product.DocumentID = existing.DocumentID
		log.Printf("updating %q (documentId %s)", entry.Name, existing.DocumentID)
		return repo.UpdateProduct(ctx, token, product)
	}
	log.Printf("creating %q", entry.Name)
	_, err = repo.CreateProduct(ctx, token, product)
	return err
}

func getOrCreateCategory(ctx context.Context, repo ports.StoreRepositoryPort, token, name string) (*domain.Category, error) {
	category, err := repo.FindCategoryByName(ctx, token, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}
	log.Printf("creating category %q", name)
	return repo.CreateCategory(ctx, token, name)
}
