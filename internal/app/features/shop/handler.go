// internal/app/features/shop/handler.go
package shop

import (
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/shopapi"
	uierrors "github.com/emperjs/shopfront/internal/app/features/errors"
)

type Handler struct {
	Shop    *shopapi.Client
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
	options *optionsCache
}

// NewHandler constructs the storefront catalog handler.
func NewHandler(shop *shopapi.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Shop:    shop,
		ErrLog:  errLog,
		Log:     logger,
		options: newOptionsCache(shop),
	}
}
