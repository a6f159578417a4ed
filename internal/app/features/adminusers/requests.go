package adminusers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/sellerapi"
	"github.com/emperjs/shopfront/internal/api/usersapi"
	"github.com/emperjs/shopfront/internal/app/system/authz"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/paging"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
	"github.com/emperjs/shopfront/internal/app/system/viewdata"
)

type requestsData struct {
	viewdata.BaseVM

	Status   string
	Statuses []string
	Rows     []requestRowVM
	Total    int
	Nav      paging.Nav

	RequestsError string

	Mail         systemMailVM
	MailError    string
	MailReadOnly bool
}

type requestRowVM struct {
	ID          string
	Slug        string
	DisplayName string
	Note        string
	Status      string
	Requested   string
	CanAct      bool
}

// systemMailVM mirrors the system email provider connection into form
// fields.
type systemMailVM struct {
	Configured   bool
	Provider     string
	AccountEmail string
	SenderEmail  string
	SenderName   string
	Status       string
}

func newSystemMailVM(conn *usersapi.Connection) systemMailVM {
	if conn == nil {
		return systemMailVM{Provider: "microsoft", Status: "active"}
	}
	return systemMailVM{
		Configured:   true,
		Provider:     conn.Provider,
		AccountEmail: conn.AccountEmail,
		SenderEmail:  conn.SenderEmail,
		SenderName:   conn.SenderName,
		Status:       conn.Status,
	}
}

// ServeRequests handles GET /admin/requests: the seller-profile request
// review queue plus the system email provider card. The provider card is
// editable by owners only; admins see it read-only.
func (h *Handler) ServeRequests(w http.ResponseWriter, r *http.Request) {
	status := normalize.Selector(query.Get(r, "status"))
	if status == "" {
		status = "pending"
	}
	page := normalize.PositiveInt(query.Get(r, "page"), 1, 1, 1_000_000)

	data := requestsData{
		BaseVM:       viewdata.NewBaseVM(w, r, "Admin: seller profiles", "/"),
		Status:       status,
		Statuses:     sellerapi.RequestStatuses,
		MailReadOnly: !authz.IsOwner(r),
		Mail:         newSystemMailVM(nil),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	creds := client.CredentialsFrom(r)

	listing, err := h.Seller.Requests(ctx, creds, status, page, paging.RequestsPageSize)
	if err != nil {
		h.Log.Warn("request list failed", zap.String("status", status), zap.Error(err))
		data.RequestsError = client.Message(err, "Failed to load seller profile requests.")
	} else {
		for _, req := range listing.Requests {
			data.Rows = append(data.Rows, requestRowVM{
				ID:          req.ID,
				Slug:        req.RequestedSlug,
				DisplayName: req.RequestedDisplayName,
				Note:        req.RequestNote,
				Status:      req.Status,
				Requested:   formatUnixMillis(req.CreatedAt),
				CanAct:      req.Status == "pending",
			})
		}
		data.Total = listing.Total
		data.Nav = paging.BuildNav(paging.Compute(listing.Page, listing.PageSize, listing.Total),
			func(index int) string { return requestsURL(status, index) })
	}

	if conn, err := h.Users.SystemEmailProvider(ctx, creds); err == nil {
		data.Mail = newSystemMailVM(conn)
	} else {
		h.Log.Debug("system email provider unavailable", zap.Error(err))
		data.MailError = client.Message(err, "Failed to load system email provider settings.")
	}

	templates.Render(w, r, "admin_requests", data)
}

func requestsURL(status string, page int) string {
	vals := url.Values{}
	if status != "" && status != "pending" {
		vals.Set("status", status)
	}
	if page > 1 {
		vals.Set("page", fmt.Sprintf("%d", page))
	}
	if len(vals) == 0 {
		return "/admin/requests"
	}
	return "/admin/requests?" + vals.Encode()
}

func formatUnixMillis(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04")
}

// ServeRequestReview handles POST /admin/requests/review with an
// approve, reject, or cancel action. Approval reports the id of the
// profile the API created.
func (h *Handler) ServeRequestReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	requestID := r.PostFormValue("request_id")
	action := normalize.Selector(r.PostFormValue("action"))
	back := safeBack(r.PostFormValue("back"), "/admin/requests")

	if requestID == "" {
		h.redirectWithError(w, r, back, "No request selected.")
		return
	}
	if action != "approve" && action != "reject" && action != "cancel" {
		h.redirectWithError(w, r, back, "Unknown review action.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	review, err := h.Seller.ReviewRequest(ctx, client.CredentialsFrom(r), requestID, action)
	if err != nil {
		h.Log.Warn("request review failed",
			zap.String("request_id", requestID), zap.String("action", action), zap.Error(err))
		h.redirectWithError(w, r, back, client.Message(err, "Failed to update seller profile request."))
		return
	}

	past := map[string]string{"approve": "approved", "reject": "rejected", "cancel": "cancelled"}
	msg := fmt.Sprintf("Request %s %s.", review.Request.RequestedSlug, past[action])
	if action == "approve" && review.SellerProfileID != "" {
		msg = fmt.Sprintf("Request %s approved. Seller profile %s created.",
			review.Request.RequestedSlug, review.SellerProfileID)
	}
	h.redirectWithSuccess(w, r, back, msg)
}
