package domain

import "time"

// Color is a store-scoped product attribute. Both (Name, StoreID) and
// (Value, StoreID) are unique within a store.
type Color struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	StoreID   string    `json:"store_id"`
}

// Touch refreshes UpdatedAt and sets CreatedAt on first use.
func (c *Color) Touch() {
	now := time.Now().UTC()
	c.UpdatedAt = now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}
