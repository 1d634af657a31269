package models

// Product is a catalog entry. The catalog is read-only; cart mutations
// reference products by id so the cart never holds an unknown product.
type Product struct {
	ID          string  `json:"id"    validate:"required"`
	Name        string  `json:"name"  validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

func (p Product) LineItem() LineItem {
	return LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	}
}
