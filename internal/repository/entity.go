package repository

import "time"

// Persisted forms of the catalog aggregates. These are what actually lands
// in the document collections; they never leak past the repository
// boundary. Product relations are stored as embedded sub-documents, not
// bare identifiers, and must be resolved on save and extracted on read.

type categoryEntity struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StoreID     string    `json:"store_id"`
}

type colorEntity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	StoreID   string    `json:"store_id"`
}

type productEntity struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Images      []string        `json:"images"`
	ReviewID    string          `json:"review_id,omitempty"`
	StoreID     string          `json:"store_id"`
	Category    *categoryEntity `json:"category,omitempty"`
	Color       *colorEntity    `json:"color,omitempty"`
}
