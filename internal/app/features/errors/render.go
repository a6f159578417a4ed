// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/system/requestid"
	"github.com/emperjs/shopfront/internal/app/system/viewdata"
)

// ErrorLogger logs handler failures and renders the matching error page.
// Features receive one from bootstrap so pages fail the same way
// everywhere.
type ErrorLogger struct {
	Log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// ServerError logs err and renders a generic failure page with 500.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	e.Log.Error("handler failed",
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
		requestid.Field(r),
		zap.Error(err))

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Something went wrong", "/"),
		Message: "Something went wrong on our side. Please try again.",
	}
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_server", data)
}

// APIError logs a storefront API failure and renders the raw response
// text the way the original console surfaces it. Non-API errors fall back
// to the generic message.
func (e *ErrorLogger) APIError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	e.Log.Warn("storefront api call failed",
		zap.String("operation", operation),
		zap.String("path", r.URL.Path),
		requestid.Field(r),
		zap.Error(err))

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Request failed", "/"),
		Message: client.Message(err, "The storefront service rejected the request."),
	}
	w.WriteHeader(http.StatusBadGateway)
	templates.Render(w, r, "error_server", data)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "You don't have permission to view this page."
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Access denied", "/"),
		Message: msg,
	}
	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_forbidden", data)
}
