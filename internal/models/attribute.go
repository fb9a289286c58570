package models

import "time"

// Attribute is the shared shape of the per-user labels a recipe can reference.
// Tag and Ingredient are defined on top of it and only differ by table.
type Attribute struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	UserID    uint   `gorm:"not null;index"`
	CreatedAt time.Time
}

// Tag labels a recipe, e.g. "Vegan" or "Cantonese".
type Tag Attribute

func (Tag) TableName() string {
	return TagKind.Table
}

// Ingredient is an item a recipe calls for.
type Ingredient Attribute

func (Ingredient) TableName() string {
	return IngredientKind.Table
}

// AttributeKind names the tables backing one attribute type and its recipe join table.
type AttributeKind struct {
	Label      string
	Table      string
	JoinTable  string
	JoinColumn string
}

var (
	TagKind = AttributeKind{
		Label:      "tag",
		Table:      "tags",
		JoinTable:  "recipe_tags",
		JoinColumn: "tag_id",
	}
	IngredientKind = AttributeKind{
		Label:      "ingredient",
		Table:      "ingredients",
		JoinTable:  "recipe_ingredients",
		JoinColumn: "ingredient_id",
	}
)
