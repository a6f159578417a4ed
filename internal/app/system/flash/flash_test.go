package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAddThenPop(t *testing.T) {
	Init("shopfront-flash-test", []byte("0123456789abcdef0123456789abcdef"), false)

	// First request queues a notice and sets the cookie.
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	Success(rr, req, "Product created.")
	Error(rr, req, "Upload failed.")

	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no cookie written")
	}

	// Follow-up request carries the cookie and drains the notices.
	rr2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/products", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	notices := Pop(rr2, req2)
	if len(notices) != 2 {
		t.Fatalf("notices = %v", notices)
	}
	if notices[0].Kind != KindSuccess || notices[0].Message != "Product created." {
		t.Fatalf("first notice = %+v", notices[0])
	}
	if notices[1].Kind != KindError {
		t.Fatalf("second notice = %+v", notices[1])
	}

	// Pop clears; a third request with the updated cookie sees nothing.
	rr3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/products", nil)
	for _, c := range rr2.Result().Cookies() {
		req3.AddCookie(c)
	}
	if rest := Pop(rr3, req3); len(rest) != 0 {
		t.Fatalf("expected drained notices, got %v", rest)
	}
}
