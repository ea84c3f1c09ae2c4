package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductNameExists = errors.New("product name already exists")
	ErrPromotionNotFound = errors.New("promotion not found")
)
