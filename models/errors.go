package models

import (
	"errors"
	"net/http"
)

// Domain errors surfaced to API clients. Handlers match them with errors.Is
// and translate through HTTPStatus/ErrorCode below.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrItemNotInCart     = errors.New("product not in cart")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateCategory = errors.New("category name already exists")
	ErrProductInUse      = errors.New("product is referenced by existing cart or order items")
	ErrEmailNotFound     = errors.New("email not registered")
	ErrWrongPassword     = errors.New("wrong password")
	ErrNegativePrice     = errors.New("price must be non-negative")
)

// HTTPStatus maps a domain error to its response status code.
// Unknown errors are treated as internal store failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrItemNotInCart):
		return http.StatusNotFound
	case errors.Is(err, ErrOutOfStock),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrEmailNotFound),
		errors.Is(err, ErrWrongPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateCategory),
		errors.Is(err, ErrProductInUse):
		return http.StatusConflict
	case errors.Is(err, ErrNegativePrice):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the stable machine-readable code for a domain error.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return "PRODUCT_NOT_FOUND"
	case errors.Is(err, ErrCategoryNotFound):
		return "CATEGORY_NOT_FOUND"
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrOrderNotFound):
		return "ORDER_NOT_FOUND"
	case errors.Is(err, ErrCartNotFound):
		return "CART_NOT_FOUND"
	case errors.Is(err, ErrItemNotInCart):
		return "ITEM_NOT_IN_CART"
	case errors.Is(err, ErrOutOfStock):
		return "OUT_OF_STOCK"
	case errors.Is(err, ErrInvalidQuantity):
		return "INVALID_QUANTITY"
	case errors.Is(err, ErrEmptyCart):
		return "EMPTY_CART"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	case errors.Is(err, ErrDuplicateCategory):
		return "DUPLICATE_CATEGORY"
	case errors.Is(err, ErrProductInUse):
		return "PRODUCT_IN_USE"
	case errors.Is(err, ErrEmailNotFound):
		return "EMAIL_NOT_REGISTERED"
	case errors.Is(err, ErrWrongPassword):
		return "WRONG_PASSWORD"
	case errors.Is(err, ErrNegativePrice):
		return "NEGATIVE_PRICE"
	default:
		return "INTERNAL_ERROR"
	}
}
