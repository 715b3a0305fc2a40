package validate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/martadmin/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngUpload(size int) *api.FileUpload {
	return &api.FileUpload{
		Name:        "test.png",
		ContentType: "image/png",
		Data:        bytes.Repeat([]byte{0}, size),
	}
}

func messages(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	vErr, ok := err.(*Error)
	require.True(t, ok, "expected *validate.Error, got %T", err)
	out := make([]string, len(vErr.Fields))
	for i, f := range vErr.Fields {
		out[i] = f.Message
	}
	return out
}

func TestProductOfferPriceAbovePrice(t *testing.T) {
	f := api.ProductForm{
		Name:       "Premium Milk",
		CategoryID: "cat1",
		Price:      50,
		OfferPrice: 60,
		Unit:       "litre",
	}
	err := Product(f, false)
	assert.Contains(t, messages(t, err), "Offer price cannot be greater than regular price")
}

func TestProductNegativeStock(t *testing.T) {
	f := api.ProductForm{
		Name:          "Premium Milk",
		CategoryID:    "cat1",
		Price:         50,
		StockQuantity: -1,
		Unit:          "litre",
	}
	err := Product(f, false)
	assert.Contains(t, messages(t, err), "Stock quantity cannot be negative")
}

func TestProductValidOnEdit(t *testing.T) {
	f := api.ProductForm{
		Name:          "Premium Milk",
		CategoryID:    "cat1",
		Price:         50,
		OfferPrice:    45,
		StockQuantity: 10,
		Unit:          "litre",
	}
	assert.NoError(t, Product(f, false))
}

func TestProductCreateRequiresImage(t *testing.T) {
	f := api.ProductForm{
		Name:       "Premium Milk",
		CategoryID: "cat1",
		Price:      50,
		Unit:       "litre",
	}
	assert.Contains(t, messages(t, Product(f, true)), "At least one product image is required")

	f.Images = []api.FileUpload{*pngUpload(128)}
	assert.NoError(t, Product(f, true))
}

func TestProductCollectsAllFailures(t *testing.T) {
	f := api.ProductForm{Price: -1, StockQuantity: -1, Unit: "bogus"}
	msgs := messages(t, Product(f, false))
	assert.Contains(t, msgs, "Product name is required")
	assert.Contains(t, msgs, "Category is required")
	assert.Contains(t, msgs, "Price must be greater than zero")
	assert.Contains(t, msgs, "Stock quantity cannot be negative")
	assert.Contains(t, msgs, "Select a valid unit")
}

func TestDeliveryBoyPhone(t *testing.T) {
	f := api.DeliveryBoyForm{
		Name:    "Ravi",
		Phone:   "12345",
		Address: "MG Road",
		City:    "Pune",
		State:   "MH",
		Pincode: "411001",
	}
	assert.Contains(t, messages(t, DeliveryBoy(f, false)), "Enter a valid 10-digit phone number")

	f.Phone = "9876543210"
	assert.NoError(t, DeliveryBoy(f, false))
}

func TestStorePincode(t *testing.T) {
	f := api.StoreForm{
		StoreName:    "Fresh Mart",
		StoreCode:    "FM01",
		Address:      "MG Road",
		City:         "Pune",
		State:        "MH",
		Pincode:      "4110",
		ManagerName:  "Asha",
		ManagerPhone: "9876543210",
	}
	assert.Contains(t, messages(t, Store(f, true)), "Enter a valid 6-digit pincode")
}

func TestStoreOptionalEmail(t *testing.T) {
	f := api.StoreForm{
		StoreName:    "Fresh Mart",
		StoreCode:    "FM01",
		Address:      "MG Road",
		City:         "Pune",
		State:        "MH",
		Pincode:      "411001",
		ManagerName:  "Asha",
		ManagerPhone: "9876543210",
	}
	assert.NoError(t, Store(f, true))

	f.ManagerEmail = "not-an-email"
	assert.Contains(t, messages(t, Store(f, true)), "Enter a valid email address")

	f.ManagerEmail = "asha@freshmart.in"
	assert.NoError(t, Store(f, true))
}

func TestOfferTextLength(t *testing.T) {
	assert.Contains(t, messages(t, OfferText(api.OfferTextForm{Text: "hey"}, true)),
		"Offer text must be at least 5 characters")
	assert.NoError(t, OfferText(api.OfferTextForm{Text: "Flat 20% off today"}, true))
	assert.Contains(t, messages(t, OfferText(api.OfferTextForm{Text: strings.Repeat("x", 501)}, true)),
		"Offer text must be at most 500 characters")
	assert.NoError(t, OfferText(api.OfferTextForm{Text: strings.Repeat("x", 500)}, true))
}

func TestOfferTextLengthCountsCharacters(t *testing.T) {
	// "café" is 4 characters but 5 bytes; still under the minimum.
	assert.Contains(t, messages(t, OfferText(api.OfferTextForm{Text: "café"}, true)),
		"Offer text must be at least 5 characters")
	assert.NoError(t, OfferText(api.OfferTextForm{Text: "café!"}, true))

	// 200 Devanagari characters are 600 bytes but well under 500 characters.
	assert.NoError(t, OfferText(api.OfferTextForm{Text: strings.Repeat("द", 200)}, true))
	assert.Contains(t, messages(t, OfferText(api.OfferTextForm{Text: strings.Repeat("द", 501)}, true)),
		"Offer text must be at most 500 characters")
}

func TestCategoryImageRules(t *testing.T) {
	f := api.CategoryForm{Title: "Dairy"}
	assert.Contains(t, messages(t, Category(f, true)), "Category image is required")
	assert.NoError(t, Category(f, false), "image is optional on edit")

	f.Image = &api.FileUpload{Name: "doc.pdf", ContentType: "application/pdf", Data: []byte("x")}
	assert.Error(t, Category(f, false))

	f.Image = pngUpload(maxImageBytes + 1)
	assert.Error(t, Category(f, false), "oversized image rejected")

	f.Image = pngUpload(1024)
	assert.NoError(t, Category(f, true))
}

func TestAppVersionRules(t *testing.T) {
	f := api.AppVersionForm{VersionCode: 0, VersionName: "", Platform: "windows"}
	msgs := messages(t, AppVersion(f, true))
	assert.Contains(t, msgs, "Version code must be greater than zero")
	assert.Contains(t, msgs, "Version name is required")
	assert.Contains(t, msgs, "Platform must be android, ios or both")

	f = api.AppVersionForm{VersionCode: 42, VersionName: "1.4.2", Platform: "android"}
	assert.NoError(t, AppVersion(f, true))
}

func TestSliderRules(t *testing.T) {
	f := api.SliderForm{Title: "Summer Sale", SortOrder: -1}
	msgs := messages(t, Slider(f, true))
	assert.Contains(t, msgs, "Sort order cannot be negative")
	assert.Contains(t, msgs, "Slider image is required")
}
