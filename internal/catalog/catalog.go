package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adnanmuhammad4393/henna-storefront/internal/errors"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
)

// Catalog is the read-only product list, loaded once at startup. Cart
// mutations go through it so the cart can never hold an unknown product.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

func New(products []models.Product) *Catalog {

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}
}

// Load reads a JSON product list from disk. An empty path yields an empty
// catalog rather than an error, so the service can boot without one.
func Load(path string) (*Catalog, error) {

	if path == "" {
		return New(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(products), nil
}

func (c *Catalog) List() []models.Product {
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) Get(id string) (models.Product, error) {

	product, ok := c.byID[id]
	if !ok {
		return models.Product{}, errors.NotFoundError("Product not found")
	}

	return product, nil
}
