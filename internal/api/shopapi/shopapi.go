// Package shopapi covers the storefront catalog endpoints: the paged
// product list, filter option counts, product create/delete, and image
// upload.
package shopapi

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/system/filterstate"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/paging"
)

// Product is a catalog product record.
type Product struct {
	ID                string         `json:"id"`
	Slug              string         `json:"slug"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	PriceCents        int64          `json:"priceCents"`
	Currency          string         `json:"currency"`
	AuthorUserID      string         `json:"authorUserId"`
	AuthorDisplayName string         `json:"authorDisplayName"`
	ImageID           string         `json:"imageId"`
	ImageURL          string         `json:"imageUrl"`
	Images            []ProductImage `json:"images"`
	Tags              []string       `json:"tags"`
	IsActive          bool           `json:"isActive"`
	CreatedAt         int64          `json:"createdAt"`
	UpdatedAt         int64          `json:"updatedAt"`
}

type ProductImage struct {
	ImageID  string `json:"imageId"`
	ImageURL string `json:"imageUrl"`
}

// SortRule is the server's echo of the applied ordering.
type SortRule struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// ProductsPage is the envelope for the paged catalog list.
type ProductsPage struct {
	Page paging.Page `json:"page"`
	Sort []SortRule  `json:"sort"`
	Data []Product   `json:"data"`
}

// FilterOption is a selectable filter value with its product count.
type FilterOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
	Label string `json:"label,omitempty"`
}

// FilterOptions are the catalog's selectable filter values. The server
// marks how long they may be cached.
type FilterOptions struct {
	Tags            []FilterOption `json:"tags"`
	Currencies      []FilterOption `json:"currencies"`
	Authors         []FilterOption `json:"authors"`
	UpdatedAt       int64          `json:"updatedAt"`
	CacheTTLSeconds int            `json:"cacheTtlSeconds"`
}

// CreateProductInput is the POST body for a new product.
type CreateProductInput struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"priceCents"`
	Currency    string   `json:"currency"`
	ImageIDs    []string `json:"imageIds"`
	IsActive    bool     `json:"isActive"`
	Tags        []string `json:"tags"`
}

// UploadedImage describes a stored product image.
type UploadedImage struct {
	ImageID     string `json:"imageId"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	URL         string `json:"url"`
}

// DeleteResult reports what a product delete removed alongside the
// product itself.
type DeleteResult struct {
	Deleted struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
		Name string `json:"name"`
	} `json:"deleted"`
	Cleanup struct {
		DeletedImageMetadataCount int `json:"deletedImageMetadataCount"`
		DeletedImageObjectCount   int `json:"deletedImageObjectCount"`
		DeletedUnreferencedTags   int `json:"deletedUnreferencedTags"`
	} `json:"cleanup"`
}

type Client struct {
	core *client.Client
}

func New(core *client.Client) *Client {
	return &Client{core: core}
}

// List fetches a catalog page for the given applied filters. The filters
// are normalized before the query string is built so equivalent filter
// states produce identical requests.
func (c *Client) List(ctx context.Context, creds client.Credentials, f filterstate.ProductFilters, page, pageSize int) (ProductsPage, error) {
	f = f.Normalize()

	vals := url.Values{}
	if f.Search != "" {
		vals.Set("search", f.Search)
	}
	if csv := normalize.JoinCSV(f.Tags); csv != "" {
		vals.Set("tags", csv)
	}
	if f.MinCents != nil {
		vals.Set("minPriceCents", strconv.FormatInt(*f.MinCents, 10))
	}
	if f.MaxCents != nil {
		vals.Set("maxPriceCents", strconv.FormatInt(*f.MaxCents, 10))
	}
	vals.Set("sort", f.Sort)
	if page > 0 {
		vals.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		vals.Set("pageSize", strconv.Itoa(pageSize))
	}

	var out ProductsPage
	if err := c.core.GetJSON(ctx, creds, "/shop/products", vals, &out); err != nil {
		return ProductsPage{}, err
	}
	return out, nil
}

// FilterOptions fetches the selectable tag, currency, and author values.
func (c *Client) FilterOptions(ctx context.Context, creds client.Credentials) (FilterOptions, error) {
	var out FilterOptions
	if err := c.core.GetJSON(ctx, creds, "/shop/filters", nil, &out); err != nil {
		return FilterOptions{}, err
	}
	return out, nil
}

// Create adds a product and returns the server's record.
func (c *Client) Create(ctx context.Context, creds client.Credentials, in CreateProductInput) (Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	if err := c.core.SendJSON(ctx, creds, "POST", "/shop/products", nil, in, &out); err != nil {
		return Product{}, err
	}
	return out.Product, nil
}

// Delete removes a product by id, reporting image metadata and orphan tag
// cleanup counts.
func (c *Client) Delete(ctx context.Context, creds client.Credentials, productID string) (DeleteResult, error) {
	vals := url.Values{"id": {productID}}
	var out DeleteResult
	if err := c.core.DeleteJSON(ctx, creds, "/shop/products", vals, &out); err != nil {
		return DeleteResult{}, err
	}
	return out, nil
}

// UploadImage stores a product image from a multipart file.
func (c *Client) UploadImage(ctx context.Context, creds client.Credentials, filename string, file io.Reader) (UploadedImage, error) {
	var out UploadedImage
	if err := c.core.UploadJSON(ctx, creds, "/shop/images/upload", "file", filename, file, &out); err != nil {
		return UploadedImage{}, err
	}
	return out, nil
}
