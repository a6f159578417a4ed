package products

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/shopapi"
	"github.com/emperjs/shopfront/internal/app/system/flash"
	"github.com/emperjs/shopfront/internal/app/system/htmlsanitize"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

const defaultCurrency = "EUR"

// maxUploadBytes bounds the in-memory portion of a product image upload.
const maxUploadBytes = 10 << 20

// createForm carries the create fields through a failed submission.
type createForm struct {
	Name        string
	Slug        string
	Description string
	Price       string
	Currency    string
	Tags        string
	IsActive    bool
	Error       string
}

// ServeCreate handles POST /products. The optional image file is
// uploaded first; the product is then created referencing the stored
// image id, matching the API's two-step write.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := createForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Slug:        r.PostFormValue("slug"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		Currency:    strings.ToUpper(strings.TrimSpace(r.PostFormValue("currency"))),
		Tags:        r.PostFormValue("tags"),
		IsActive:    r.PostFormValue("is_active") != "",
	}
	if form.Currency == "" {
		form.Currency = defaultCurrency
	}

	slug := normalize.Slug(form.Slug)
	if slug == "" {
		slug = normalize.Slug(form.Name)
	}

	switch {
	case form.Name == "":
		form.Error = "Name is required."
	case slug == "":
		form.Error = "Slug is required."
	}
	var cents int64
	if form.Error == "" {
		c, set, ok := normalize.OptionalCents(form.Price)
		if !ok || !set {
			form.Error = "Price must be 0 or more."
		} else {
			cents = c
		}
	}
	if form.Error != "" {
		h.renderList(w, r, form)
		return
	}

	creds := client.CredentialsFrom(r)

	var imageIDs []string
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		upCtx, cancel := context.WithTimeout(r.Context(), timeouts.Upload())
		uploaded, err := h.Shop.UploadImage(upCtx, creds, header.Filename, file)
		cancel()
		if err != nil {
			h.Log.Warn("image upload failed", zap.Error(err))
			form.Error = client.Message(err, "Image upload failed.")
			h.renderList(w, r, form)
			return
		}
		imageIDs = append(imageIDs, uploaded.ImageID)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Shop.Create(ctx, creds, shopapi.CreateProductInput{
		Slug:        slug,
		Name:        form.Name,
		Description: strings.TrimSpace(htmlsanitize.Sanitize(form.Description)),
		PriceCents:  cents,
		Currency:    form.Currency,
		ImageIDs:    imageIDs,
		IsActive:    form.IsActive,
		Tags:        normalize.Tags(form.Tags),
	})
	if err != nil {
		h.Log.Warn("product create failed", zap.Error(err))
		form.Error = client.Message(err, "Product creation failed.")
		h.renderList(w, r, form)
		return
	}

	flash.Success(w, r, fmt.Sprintf("Product %q created.", created.Name))
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}
