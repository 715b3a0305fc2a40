package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/example/martadmin/pkg/models"
)

type OfferTextForm struct {
	Text string
}

type OfferImageForm struct {
	Image *FileUpload
}

type SliderForm struct {
	Title       string
	Subtitle    string
	RedirectURL string
	SortOrder   int
	Image       *FileUpload
}

func (f SliderForm) fields() map[string]string {
	return map[string]string{
		"title":       f.Title,
		"subtitle":    f.Subtitle,
		"redirectUrl": f.RedirectURL,
		"sortOrder":   strconv.Itoa(f.SortOrder),
	}
}

func (f SliderForm) files() map[string][]FileUpload {
	if f.Image == nil {
		return nil
	}
	return map[string][]FileUpload{"image": {*f.Image}}
}

// ----- Offer texts -----

func (c *Client) ListOfferTexts(ctx context.Context) ([]models.OfferText, error) {
	var out []models.OfferText
	if err := c.doJSON(ctx, http.MethodGet, "/api/offer-texts/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOfferText(ctx context.Context, f OfferTextForm) (*models.OfferText, error) {
	var out models.OfferText
	body := map[string]string{"text": f.Text}
	if err := c.doJSON(ctx, http.MethodPost, "/api/offer-texts", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOfferText(ctx context.Context, id string, f OfferTextForm) error {
	body := map[string]string{"text": f.Text}
	return c.doJSON(ctx, http.MethodPatch, "/api/offer-texts/"+id, nil, body, nil)
}

func (c *Client) SetOfferTextStatus(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, http.MethodPatch, "/api/offer-texts/"+id+"/status", nil, body, nil)
}

func (c *Client) DeleteOfferText(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/offer-texts/"+id, nil, nil, nil)
}

// ----- Offer images -----

func (c *Client) ListOfferImages(ctx context.Context) ([]models.OfferImage, error) {
	var out []models.OfferImage
	if err := c.doJSON(ctx, http.MethodGet, "/api/offer-images/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOfferImage(ctx context.Context, f OfferImageForm) (*models.OfferImage, error) {
	var out models.OfferImage
	files := map[string][]FileUpload{}
	if f.Image != nil {
		files["image"] = []FileUpload{*f.Image}
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/api/offer-images", nil, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOfferImage(ctx context.Context, id string, f OfferImageForm) error {
	files := map[string][]FileUpload{}
	if f.Image != nil {
		files["image"] = []FileUpload{*f.Image}
	}
	return c.doMultipart(ctx, http.MethodPatch, "/api/offer-images/"+id, nil, files, nil)
}

func (c *Client) SetOfferImageStatus(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, http.MethodPatch, "/api/offer-images/"+id+"/status", nil, body, nil)
}

func (c *Client) DeleteOfferImage(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/offer-images/"+id, nil, nil, nil)
}

// ----- Sliders -----

func (c *Client) ListSliders(ctx context.Context) ([]models.Slider, error) {
	var out []models.Slider
	if err := c.doJSON(ctx, http.MethodGet, "/api/sliders/admin/list/all", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSlider(ctx context.Context, f SliderForm) (*models.Slider, error) {
	var out models.Slider
	if err := c.doMultipart(ctx, http.MethodPost, "/api/sliders", f.fields(), f.files(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSlider(ctx context.Context, id string, f SliderForm) error {
	return c.doMultipart(ctx, http.MethodPatch, "/api/sliders/"+id, f.fields(), f.files(), nil)
}

func (c *Client) SetSliderStatus(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doJSON(ctx, http.MethodPatch, "/api/sliders/"+id+"/status", nil, body, nil)
}

func (c *Client) DeleteSlider(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/sliders/"+id, nil, nil, nil)
}
