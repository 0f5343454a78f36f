// internal/core/domain/item.go
package domain

import (
	"strings"
	"unicode/utf8"
)

// Field constraints for catalog items
const (
	NameMinLength        = 3
	NameMaxLength        = 100
	DescriptionMaxLength = 300
	DefaultQuantity      = 1
)

// Item represents a single catalog item
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// InStock reports whether the item has any units available
func (i *Item) InStock() bool {
	return i.Quantity > 0
}

// Clone returns a deep copy of the item. Callers outside the store
// must never hold references into store-owned records.
func (i *Item) Clone() Item {
	out := *i
	if i.Description != nil {
		desc := *i.Description
		out.Description = &desc
	}
	return out
}

// ItemCreate is the payload for creating or fully replacing an item.
// Quantity is a pointer so an absent field can default to 1 while an
// explicit zero is preserved.
type ItemCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    *int    `json:"quantity,omitempty"`
}

// Validate checks all field constraints and returns a ValidationError
// listing every failing field, or nil if the payload is valid.
func (c *ItemCreate) Validate() *ValidationError {
	var fields []FieldError

	nameLen := utf8.RuneCountInString(c.Name)
	switch {
	case strings.TrimSpace(c.Name) == "":
		fields = append(fields, FieldError{
			Field:   "body -> name",
			Message: "name is required",
			Type:    "missing",
			Input:   c.Name,
		})
	case nameLen < NameMinLength:
		fields = append(fields, FieldError{
			Field:   "body -> name",
			Message: "name must be at least 3 characters",
			Type:    "string_too_short",
			Input:   c.Name,
		})
	case nameLen > NameMaxLength:
		fields = append(fields, FieldError{
			Field:   "body -> name",
			Message: "name must be at most 100 characters",
			Type:    "string_too_long",
			Input:   c.Name,
		})
	}

	if c.Description != nil && utf8.RuneCountInString(*c.Description) > DescriptionMaxLength {
		fields = append(fields, FieldError{
			Field:   "body -> description",
			Message: "description must be at most 300 characters",
			Type:    "string_too_long",
			Input:   *c.Description,
		})
	}

	if c.Price <= 0 {
		fields = append(fields, FieldError{
			Field:   "body -> price",
			Message: "price must be greater than 0",
			Type:    "greater_than",
			Input:   c.Price,
		})
	}

	if c.Quantity != nil && *c.Quantity < 0 {
		fields = append(fields, FieldError{
			Field:   "body -> quantity",
			Message: "quantity must be greater than or equal to 0",
			Type:    "greater_than_equal",
			Input:   *c.Quantity,
		})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ToItem converts the payload to an Item with defaults applied.
// The ID is left unset; the store assigns it.
func (c *ItemCreate) ToItem() Item {
	item := Item{
		Name:     c.Name,
		Price:    c.Price,
		Quantity: DefaultQuantity,
	}
	if c.Description != nil {
		desc := *c.Description
		item.Description = &desc
	}
	if c.Quantity != nil {
		item.Quantity = *c.Quantity
	}
	return item
}

// ItemUpdate is the payload for partial updates. All fields are
// optional; only non-nil fields overwrite the stored record.
type ItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all
func (u *ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Quantity == nil
}

// Validate checks the constraints of every field that is present
func (u *ItemUpdate) Validate() *ValidationError {
	var fields []FieldError

	if u.Name != nil {
		nameLen := utf8.RuneCountInString(*u.Name)
		if nameLen < NameMinLength {
			fields = append(fields, FieldError{
				Field:   "body -> name",
				Message: "name must be at least 3 characters",
				Type:    "string_too_short",
				Input:   *u.Name,
			})
		} else if nameLen > NameMaxLength {
			fields = append(fields, FieldError{
				Field:   "body -> name",
				Message: "name must be at most 100 characters",
				Type:    "string_too_long",
				Input:   *u.Name,
			})
		}
	}

	if u.Description != nil && utf8.RuneCountInString(*u.Description) > DescriptionMaxLength {
		fields = append(fields, FieldError{
			Field:   "body -> description",
			Message: "description must be at most 300 characters",
			Type:    "string_too_long",
			Input:   *u.Description,
		})
	}

	if u.Price != nil && *u.Price <= 0 {
		fields = append(fields, FieldError{
			Field:   "body -> price",
			Message: "price must be greater than 0",
			Type:    "greater_than",
			Input:   *u.Price,
		})
	}

	if u.Quantity != nil && *u.Quantity < 0 {
		fields = append(fields, FieldError{
			Field:   "body -> quantity",
			Message: "quantity must be greater than or equal to 0",
			Type:    "greater_than_equal",
			Input:   *u.Quantity,
		})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ApplyTo overwrites only the fields present in the patch. The item's
// ID is never touched.
func (u *ItemUpdate) ApplyTo(item *Item) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Description != nil {
		desc := *u.Description
		item.Description = &desc
	}
	if u.Price != nil {
		item.Price = *u.Price
	}
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
}
