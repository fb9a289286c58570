package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe belongs to one user and references any number of tags and ingredients.
type Recipe struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"not null;index"`
	Name        string          `gorm:"size:255;not null"`
	TimeMinutes int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Link        string          `gorm:"size:255"`
	Image       *string         `gorm:"size:255"`
	Tags        []Tag           `gorm:"many2many:recipe_tags"`
	Ingredients []Ingredient    `gorm:"many2many:recipe_ingredients"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TagIDs returns the ids of the loaded tags in load order
func (r *Recipe) TagIDs() []uint {
	ids := make([]uint, 0, len(r.Tags))
	for _, t := range r.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// IngredientIDs returns the ids of the loaded ingredients in load order
func (r *Recipe) IngredientIDs() []uint {
	ids := make([]uint, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ids = append(ids, i.ID)
	}
	return ids
}
