// Package sellerprofile is the seller workspace: request a profile, load
// one by slug, edit its identity, and manage its team (members, invites,
// ownership transfer, email provider).
package sellerprofile

import (
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/sellerapi"
	uierrors "github.com/emperjs/shopfront/internal/app/features/errors"
)

type Handler struct {
	Seller *sellerapi.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(seller *sellerapi.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Seller: seller, ErrLog: errLog, Log: logger}
}
