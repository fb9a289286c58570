package services

import (
	"fmt"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows whose user_id is userID
func OwnedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// AssignedOnly keeps attribute rows referenced by at least one recipe edge.
// It is a semi-join, so a row linked to several recipes still comes back once.
// Edges of every recipe count, not just the caller's.
func AssignedOnly(kind models.AttributeKind) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s.id)",
			kind.JoinTable, kind.JoinTable, kind.JoinColumn, kind.Table,
		))
	}
}

// OrderByNameDesc sorts by name, descending and case-sensitive, oldest row first on ties
func OrderByNameDesc(db *gorm.DB) *gorm.DB {
	column := "name"
	if db.Dialector.Name() == "postgres" {
		column = `name COLLATE "C"`
	}
	return db.Order(column + " DESC").Order("id ASC")
}

// NewestFirst sorts by id descending
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}
