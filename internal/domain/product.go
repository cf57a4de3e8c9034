package domain

import "time"

// Product is a catalog entry owned by a store. CategoryID and ColorID are
// weak references: they carry no ownership and deleting the referenced
// entity does not cascade to the product.
type Product struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
	ReviewID    string    `json:"review_id,omitempty"`
	StoreID     string    `json:"store_id"`
	CategoryID  string    `json:"category_id,omitempty"`
	ColorID     string    `json:"color_id,omitempty"`
}

// Touch refreshes UpdatedAt and sets CreatedAt on first use.
func (p *Product) Touch() {
	now := time.Now().UTC()
	p.UpdatedAt = now
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
}

// AddImage appends an image URL to the product's ordered image list.
func (p *Product) AddImage(url string) {
	p.Images = append(p.Images, url)
}
