package shopapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/system/filterstate"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(client.New(srv.URL, 5*time.Second, zap.NewNop()))
}

func TestList_NormalizedFiltersProduceCanonicalQuery(t *testing.T) {
	var got url.Values
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		json.NewEncoder(w).Encode(ProductsPage{})
	})

	min := int64(500)
	f := filterstate.ProductFilters{
		Search:   "  Walnut Desk ",
		Tags:     []string{"Wood", "wood", " desk "},
		MinCents: &min,
	}
	_, err := c.List(context.Background(), "", f, 3, 24)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if got.Get("search") != "Walnut Desk" {
		t.Fatalf("search = %q", got.Get("search"))
	}
	if got.Get("tags") != "desk,wood" {
		t.Fatalf("tags = %q", got.Get("tags"))
	}
	if got.Get("minPriceCents") != "500" {
		t.Fatalf("minPriceCents = %q", got.Get("minPriceCents"))
	}
	if got.Has("maxPriceCents") {
		t.Fatal("unset max bound must be omitted")
	}
	if got.Get("sort") != "date" {
		t.Fatalf("default sort = %q", got.Get("sort"))
	}
	if got.Get("page") != "3" || got.Get("pageSize") != "24" {
		t.Fatalf("paging = %q/%q", got.Get("page"), got.Get("pageSize"))
	}
}

func TestDelete_DecodesCleanupCounts(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Query().Get("id") != "prod-1" {
			t.Fatalf("unexpected %s %s?%s", r.Method, r.URL.Path, r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"deleted": {"id":"prod-1","slug":"walnut-desk","name":"Walnut Desk"},
			"cleanup": {"deletedImageMetadataCount":1,"deletedImageObjectCount":1,"deletedUnreferencedTags":2}
		}`))
	})

	out, err := c.Delete(context.Background(), "", "prod-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if out.Deleted.Name != "Walnut Desk" {
		t.Fatalf("deleted = %+v", out.Deleted)
	}
	if out.Cleanup.DeletedUnreferencedTags != 2 {
		t.Fatalf("cleanup = %+v", out.Cleanup)
	}
}

func TestUploadImage_MultipartFileField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "cover.png" {
			t.Fatalf("filename = %q", header.Filename)
		}
		json.NewEncoder(w).Encode(UploadedImage{ImageID: "img-1", URL: "/images/img-1"})
	})

	out, err := c.UploadImage(context.Background(), "", "cover.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if out.ImageID != "img-1" {
		t.Fatalf("uploaded = %+v", out)
	}
}

func TestCreate_UnwrapsProductEnvelope(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in CreateProductInput
		json.NewDecoder(r.Body).Decode(&in)
		json.NewEncoder(w).Encode(map[string]Product{
			"product": {ID: "prod-2", Slug: in.Slug, Name: in.Name},
		})
	})

	p, err := c.Create(context.Background(), "", CreateProductInput{Slug: "oak-chair", Name: "Oak Chair"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != "prod-2" || p.Slug != "oak-chair" {
		t.Fatalf("product = %+v", p)
	}
}
