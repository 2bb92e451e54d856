// Package model holds the recipe entity, the request payloads handlers bind
// into, and the wire records they respond with.
package model

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared by every payload; validator caches struct metadata.
var validate = validator.New()

// Recipe is the persisted entity, one row of the recipe table.
type Recipe struct {
	ID           int64
	Name         string
	Description  string
	Ingredients  StringList
	Instructions StringList
	ImageURL     *string
	IsFavorite   bool
}
