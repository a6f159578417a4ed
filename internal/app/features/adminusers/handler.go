// Package adminusers is the admin console: the user/role table,
// seller-profile request review, and the system email provider.
package adminusers

import (
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/sellerapi"
	"github.com/emperjs/shopfront/internal/api/usersapi"
	uierrors "github.com/emperjs/shopfront/internal/app/features/errors"
)

type Handler struct {
	Users  *usersapi.Client
	Seller *sellerapi.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(users *usersapi.Client, seller *sellerapi.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Seller: seller, ErrLog: errLog, Log: logger}
}
