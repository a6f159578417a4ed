package sellerprofile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/sellerapi"
	uierrors "github.com/emperjs/shopfront/internal/app/features/errors"
	"github.com/emperjs/shopfront/internal/app/features/sellerprofile"
	"github.com/emperjs/shopfront/internal/testutil"
)

func newTestHandler(t *testing.T, apiURL string) *sellerprofile.Handler {
	t.Helper()
	logger := zap.NewNop()
	core := client.New(apiURL, 5*time.Second, logger)
	return sellerprofile.NewHandler(sellerapi.New(core), uierrors.NewErrorLogger(logger), logger)
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func testProfile() sellerapi.Profile {
	var p sellerapi.Profile
	p.ID = "sp-1"
	p.Slug = "berend"
	p.DisplayName = "Berend Goods"
	p.Status = "active"
	return p
}

func TestServeWorkspace_NoSelector_NoRequests(t *testing.T) {
	testutil.BootTemplates(t)
	api := testutil.FakeAPI(t, nil)
	handler := newTestHandler(t, api.URL)

	req := testutil.NewAuthenticatedRequest("GET", "/seller", testutil.SellerUser())
	rec := httptest.NewRecorder()
	handler.ServeWorkspace(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Load seller profile") {
		t.Errorf("expected load form, got %q", rec.Body.String())
	}
}

func TestServeWorkspace_LoadsProfileBundle(t *testing.T) {
	testutil.BootTemplates(t)
	user := testutil.SellerUser()

	api := testutil.FakeAPI(t, map[string]http.HandlerFunc{
		"GET /shop/seller-profile": func(w http.ResponseWriter, r *http.Request) {
			if slug := r.URL.Query().Get("slug"); slug != "berend" {
				t.Errorf("slug: got %q, want %q", slug, "berend")
			}
			testutil.JSONHandler(map[string]sellerapi.Profile{"profile": testProfile()})(w, r)
		},
		"GET /shop/seller-profile/members": testutil.JSONHandler(map[string][]sellerapi.Member{
			"members": {{UserID: user.ID, Role: "owner", DisplayName: "Berend", Email: "berend@example.com"}},
		}),
		"GET /shop/seller-profile/invites": testutil.JSONHandler(map[string][]sellerapi.Invite{
			"invites": {{ID: "inv-1", InvitedEmail: "new@example.com", Role: "member", Status: "pending"}},
		}),
		"GET /shop/seller-profile/email-provider": testutil.JSONHandler(map[string]any{
			"connection": nil,
		}),
	})
	handler := newTestHandler(t, api.URL)

	req := testutil.WithUser(httptest.NewRequest("GET", "/seller?slug=Berend", nil), user)
	rec := httptest.NewRecorder()
	handler.ServeWorkspace(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Berend Goods") {
		t.Errorf("expected profile display name, got %q", body)
	}
	if !strings.Contains(body, "berend@example.com") {
		t.Errorf("expected member email, got %q", body)
	}
	if !strings.Contains(body, "new@example.com") {
		t.Errorf("expected invite email, got %q", body)
	}
	// Profile-owner membership unlocks the identity form.
	if !strings.Contains(body, "Save profile") {
		t.Errorf("expected editable identity form for profile owner, got %q", body)
	}
}

func TestServeWorkspace_MemberRole_ReadOnlyIdentity(t *testing.T) {
	testutil.BootTemplates(t)
	user := testutil.SellerUser()

	api := testutil.FakeAPI(t, map[string]http.HandlerFunc{
		"GET /shop/seller-profile": testutil.JSONHandler(map[string]sellerapi.Profile{"profile": testProfile()}),
		"GET /shop/seller-profile/members": testutil.JSONHandler(map[string][]sellerapi.Member{
			"members": {{UserID: user.ID, Role: "member", Email: "m@example.com"}},
		}),
		"GET /shop/seller-profile/invites":        testutil.JSONHandler(map[string][]sellerapi.Invite{"invites": {}}),
		"GET /shop/seller-profile/email-provider": testutil.JSONHandler(map[string]any{"connection": nil}),
	})
	handler := newTestHandler(t, api.URL)

	req := testutil.WithUser(httptest.NewRequest("GET", "/seller?slug=berend", nil), user)
	rec := httptest.NewRecorder()
	handler.ServeWorkspace(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "Save profile") {
		t.Errorf("expected read-only identity form for plain member, got %q", body)
	}
	if strings.Contains(body, "Transfer ownership") {
		t.Errorf("expected no transfer card for plain member, got %q", body)
	}
}

func TestServeWorkspace_ProfileLoadFails(t *testing.T) {
	testutil.BootTemplates(t)
	api := testutil.FakeAPI(t, map[string]http.HandlerFunc{
		"GET /shop/seller-profile": testutil.ErrorHandler(http.StatusNotFound, "seller profile not found"),
	})
	handler := newTestHandler(t, api.URL)

	req := testutil.NewAuthenticatedRequest("GET", "/seller?slug=missing", testutil.SellerUser())
	rec := httptest.NewRecorder()
	handler.ServeWorkspace(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "seller profile not found") {
		t.Errorf("expected load error message, got %q", rec.Body.String())
	}
}

func TestServeRequestCreate_SubmitsAndRedirects(t *testing.T) {
	var got struct {
		Slug        string `json:"slug"`
		DisplayName string `json:"displayName"`
		RequestNote string `json:"requestNote"`
	}
	api := testutil.FakeAPI(t, map[string]http.HandlerFunc{
		"POST /shop/seller-profile/request": func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decode request payload: %v", err)
			}
			testutil.JSONHandler(map[string]sellerapi.Request{
				"request": {ID: "req-1", Status: "pending"},
			})(w, r)
		},
	})
	handler := newTestHandler(t, api.URL)

	rec := httptest.NewRecorder()
	handler.ServeRequestCreate(rec, formRequest("/seller/request", url.Values{
		"slug":         {"Berend Goods"},
		"display_name": {"Berend Goods"},
		"note":         {"please"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got.Slug != "berend-goods" {
		t.Errorf("slug: got %q, want %q", got.Slug, "berend-goods")
	}
	if got.DisplayName != "Berend Goods" {
		t.Errorf("displayName: got %q, want %q", got.DisplayName, "Berend Goods")
	}
}

func TestServeRequestCreate_MissingFields_NoRequest(t *testing.T) {
	api := testutil.FakeAPI(t, nil)
	handler := newTestHandler(t, api.URL)

	rec := httptest.NewRecorder()
	handler.ServeRequestCreate(rec, formRequest("/seller/request", url.Values{
		"slug": {"berend"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestServeIdentityUpdate_PatchesAndRedirectsToNewSlug(t *testing.T) {
	var patch sellerapi.ProfilePatch
	api := testutil.FakeAPI(t, map[string]http.HandlerFunc{
		"PATCH /shop/seller-profile": func(w http.ResponseWriter, r *http.Request) {
			if id := r.URL.Query().Get("id"); id != "sp-1" {
				t.Errorf("id: got %q, want %q", id, "sp-1")
			}
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				t.Errorf("decode patch: %v", err)
			}
			updated := testProfile()
			updated.Slug = "berend-goods"
			testutil.JSONHandler(map[string]sellerapi.Profile{"profile": updated})(w, r)
		},
	})
	handler := newTestHandler(t, api.URL)

	rec := httptest.NewRecorder()
	handler.ServeIdentityUpdate(rec, formRequest("/seller/profile", url.Values{
		"id":                 {"sp-1"},
		"current_slug":       {"berend"},
		"slug":               {"Berend Goods"},
		"display_name":       {"Berend Goods"},
		"member_list_public": {"1"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/seller?slug=berend-goods" {
		t.Errorf("Location: got %q, want %q", loc, "/seller?slug=berend-goods")
	}
	if patch.Slug == nil || *patch.Slug != "berend-goods" {
		t.Errorf("patch slug: got %v, want berend-goods", patch.Slug)
	}
	if patch.IsMemberListPublic == nil || !*patch.IsMemberListPublic {
		t.Errorf("patch isMemberListPublic: got %v, want true", patch.IsMemberListPublic)
	}
}

func TestServeInviteCreate_DefaultsRoleToMember(t *testing.T) {
	var got struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	api := testutil.FakeAPI(t, map[string]http.HandlerFunc{
		"POST /shop/seller-profile/invite": func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decode invite payload: %v", err)
			}
			testutil.JSONHandler(sellerapi.InviteResult{
				Invite:   sellerapi.Invite{ID: "inv-1", Status: "pending"},
				Delivery: "queued",
			})(w, r)
		},
	})
	handler := newTestHandler(t, api.URL)

	rec := httptest.NewRecorder()
	handler.ServeInviteCreate(rec, formRequest("/seller/invites", url.Values{
		"id":           {"sp-1"},
		"current_slug": {"berend"},
		"email":        {"New@Example.com"},
		"role":         {"unknown"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/seller?slug=berend" {
		t.Errorf("Location: got %q, want %q", loc, "/seller?slug=berend")
	}
	if got.Email != "new@example.com" {
		t.Errorf("email: got %q, want %q", got.Email, "new@example.com")
	}
	if got.Role != "member" {
		t.Errorf("role: got %q, want %q", got.Role, "member")
	}
}

func TestServeTransfer_MissingTarget_NoRequest(t *testing.T) {
	api := testutil.FakeAPI(t, nil)
	handler := newTestHandler(t, api.URL)

	rec := httptest.NewRecorder()
	handler.ServeTransfer(rec, formRequest("/seller/transfer", url.Values{
		"id":           {"sp-1"},
		"current_slug": {"berend"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/seller?slug=berend" {
		t.Errorf("Location: got %q, want %q", loc, "/seller?slug=berend")
	}
}

func TestServeMailSave_RejectsUnknownProvider(t *testing.T) {
	api := testutil.FakeAPI(t, nil)
	handler := newTestHandler(t, api.URL)

	rec := httptest.NewRecorder()
	handler.ServeMailSave(rec, formRequest("/seller/mail", url.Values{
		"id":           {"sp-1"},
		"current_slug": {"berend"},
		"provider":     {"yahoo"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestServeMailDelete_CallsAPI(t *testing.T) {
	called := false
	api := testutil.FakeAPI(t, map[string]http.HandlerFunc{
		"DELETE /shop/seller-profile/email-provider": func(w http.ResponseWriter, r *http.Request) {
			called = true
			if id := r.URL.Query().Get("id"); id != "sp-1" {
				t.Errorf("id: got %q, want %q", id, "sp-1")
			}
			testutil.JSONHandler(map[string]bool{"deleted": true})(w, r)
		},
	})
	handler := newTestHandler(t, api.URL)

	rec := httptest.NewRecorder()
	handler.ServeMailDelete(rec, formRequest("/seller/mail/delete", url.Values{
		"id":           {"sp-1"},
		"current_slug": {"berend"},
	}))

	if !called {
		t.Fatal("expected delete request")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
}
