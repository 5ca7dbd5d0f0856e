package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tooldocker/internal/errors"
	"tooldocker/internal/model"
)

// ProductInput is the raw form payload for creating or updating a product.
// Price and stock arrive as form strings and are parsed here, never trusted.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       string
	Stock       string
}

// ValidatedProduct is a ProductInput after parsing.
type ValidatedProduct struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
}

// ValidateProductInput parses and checks the raw fields, returning the typed
// values or the first validation error found.
func ValidateProductInput(in ProductInput) (*ValidatedProduct, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.ErrMissingName
	}

	if !model.ValidCategory(in.Category) {
		return nil, errors.ErrInvalidCategory
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || price.IsNegative() {
		return nil, errors.ErrInvalidPrice
	}

	stock, err := strconv.Atoi(strings.TrimSpace(in.Stock))
	if err != nil || stock < 0 {
		return nil, errors.ErrInvalidStock
	}

	return &ValidatedProduct{
		Name:        name,
		Description: in.Description,
		Category:    in.Category,
		Price:       price,
		Stock:       stock,
	}, nil
}
