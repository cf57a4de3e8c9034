package domain

import "time"

// Category groups products inside a single store. The (Title, StoreID)
// pair is unique among the store's categories.
type Category struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StoreID     string    `json:"store_id"`
}

// Touch refreshes UpdatedAt and sets CreatedAt on first use.
func (c *Category) Touch() {
	now := time.Now().UTC()
	c.UpdatedAt = now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}
