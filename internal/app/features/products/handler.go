// Package products is the product management surface: create products,
// upload their images, and delete them with cleanup reporting. The
// remote API enforces who may actually write; this page is gated to
// roles that can manage products.
package products

import (
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/shopapi"
	uierrors "github.com/emperjs/shopfront/internal/app/features/errors"
)

type Handler struct {
	Shop   *shopapi.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(shop *shopapi.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Shop: shop, ErrLog: errLog, Log: logger}
}
