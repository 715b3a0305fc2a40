package validate

import (
	"unicode/utf8"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/models"
)

// Each resource has one rule table used by both its create and edit flows;
// rules that only apply on create (image required on first upload) are
// appended behind the creating flag.

var categoryRules = Rules[api.CategoryForm]{
	{"title", func(f api.CategoryForm) bool { return NotBlank(f.Title) }, "Title is required"},
	{"image", func(f api.CategoryForm) bool { return ImageOK(f.Image) }, "Image must be an image file no larger than 5MB"},
}

func Category(f api.CategoryForm, creating bool) error {
	rules := categoryRules
	if creating {
		rules = append(rules[:len(rules):len(rules)], Rule[api.CategoryForm]{
			"image", func(f api.CategoryForm) bool { return f.Image != nil }, "Category image is required",
		})
	}
	return rules.Validate(f)
}

var productRules = Rules[api.ProductForm]{
	{"name", func(f api.ProductForm) bool { return NotBlank(f.Name) }, "Product name is required"},
	{"category", func(f api.ProductForm) bool { return NotBlank(f.CategoryID) }, "Category is required"},
	{"price", func(f api.ProductForm) bool { return f.Price > 0 }, "Price must be greater than zero"},
	{"offerPrice", func(f api.ProductForm) bool { return f.OfferPrice >= 0 }, "Offer price cannot be negative"},
	{"offerPrice", func(f api.ProductForm) bool { return f.OfferPrice <= f.Price }, "Offer price cannot be greater than regular price"},
	{"stockQuantity", func(f api.ProductForm) bool { return f.StockQuantity >= 0 }, "Stock quantity cannot be negative"},
	{"unit", func(f api.ProductForm) bool { return models.ValidUnit(f.Unit) }, "Select a valid unit"},
	{"images", func(f api.ProductForm) bool { return len(f.Images) <= 3 }, "At most 3 images are allowed"},
	{"images", func(f api.ProductForm) bool { return ImagesOK(f.Images) }, "Each image must be an image file no larger than 5MB"},
}

func Product(f api.ProductForm, creating bool) error {
	rules := productRules
	if creating {
		rules = append(rules[:len(rules):len(rules)], Rule[api.ProductForm]{
			"images", func(f api.ProductForm) bool { return len(f.Images) > 0 }, "At least one product image is required",
		})
	}
	return rules.Validate(f)
}

var storeRules = Rules[api.StoreForm]{
	{"storeName", func(f api.StoreForm) bool { return NotBlank(f.StoreName) }, "Store name is required"},
	{"storeCode", func(f api.StoreForm) bool { return NotBlank(f.StoreCode) }, "Store code is required"},
	{"address", func(f api.StoreForm) bool { return NotBlank(f.Address) }, "Address is required"},
	{"city", func(f api.StoreForm) bool { return NotBlank(f.City) }, "City is required"},
	{"state", func(f api.StoreForm) bool { return NotBlank(f.State) }, "State is required"},
	{"pincode", func(f api.StoreForm) bool { return Pincode(f.Pincode) }, "Enter a valid 6-digit pincode"},
	{"managerName", func(f api.StoreForm) bool { return NotBlank(f.ManagerName) }, "Manager name is required"},
	{"managerPhone", func(f api.StoreForm) bool { return Phone(f.ManagerPhone) }, "Enter a valid 10-digit phone number"},
	{"managerEmail", func(f api.StoreForm) bool { return EmailOrBlank(f.ManagerEmail) }, "Enter a valid email address"},
	{"storeImage", func(f api.StoreForm) bool { return ImageOK(f.Image) }, "Store image must be an image file no larger than 5MB"},
}

func Store(f api.StoreForm, _ bool) error {
	return storeRules.Validate(f)
}

var deliveryBoyRules = Rules[api.DeliveryBoyForm]{
	{"name", func(f api.DeliveryBoyForm) bool { return NotBlank(f.Name) }, "Name is required"},
	{"phone", func(f api.DeliveryBoyForm) bool { return Phone(f.Phone) }, "Enter a valid 10-digit phone number"},
	{"email", func(f api.DeliveryBoyForm) bool { return EmailOrBlank(f.Email) }, "Enter a valid email address"},
	{"address", func(f api.DeliveryBoyForm) bool { return NotBlank(f.Address) }, "Address is required"},
	{"city", func(f api.DeliveryBoyForm) bool { return NotBlank(f.City) }, "City is required"},
	{"state", func(f api.DeliveryBoyForm) bool { return NotBlank(f.State) }, "State is required"},
	{"pincode", func(f api.DeliveryBoyForm) bool { return Pincode(f.Pincode) }, "Enter a valid 6-digit pincode"},
	{"profileImage", func(f api.DeliveryBoyForm) bool { return ImageOK(f.ProfileImage) }, "Profile image must be an image file no larger than 5MB"},
}

func DeliveryBoy(f api.DeliveryBoyForm, _ bool) error {
	return deliveryBoyRules.Validate(f)
}

// Length bounds count characters, not bytes.
var offerTextRules = Rules[api.OfferTextForm]{
	{"text", func(f api.OfferTextForm) bool { return utf8.RuneCountInString(f.Text) >= 5 }, "Offer text must be at least 5 characters"},
	{"text", func(f api.OfferTextForm) bool { return utf8.RuneCountInString(f.Text) <= 500 }, "Offer text must be at most 500 characters"},
}

func OfferText(f api.OfferTextForm, _ bool) error {
	return offerTextRules.Validate(f)
}

var offerImageRules = Rules[api.OfferImageForm]{
	{"image", func(f api.OfferImageForm) bool { return ImageOK(f.Image) }, "Image must be an image file no larger than 5MB"},
}

func OfferImage(f api.OfferImageForm, creating bool) error {
	rules := offerImageRules
	if creating {
		rules = append(rules[:len(rules):len(rules)], Rule[api.OfferImageForm]{
			"image", func(f api.OfferImageForm) bool { return f.Image != nil }, "Offer image is required",
		})
	}
	return rules.Validate(f)
}

var sliderRules = Rules[api.SliderForm]{
	{"title", func(f api.SliderForm) bool { return NotBlank(f.Title) }, "Title is required"},
	{"sortOrder", func(f api.SliderForm) bool { return f.SortOrder >= 0 }, "Sort order cannot be negative"},
	{"image", func(f api.SliderForm) bool { return ImageOK(f.Image) }, "Image must be an image file no larger than 5MB"},
}

func Slider(f api.SliderForm, creating bool) error {
	rules := sliderRules
	if creating {
		rules = append(rules[:len(rules):len(rules)], Rule[api.SliderForm]{
			"image", func(f api.SliderForm) bool { return f.Image != nil }, "Slider image is required",
		})
	}
	return rules.Validate(f)
}

var appVersionRules = Rules[api.AppVersionForm]{
	{"versionCode", func(f api.AppVersionForm) bool { return f.VersionCode > 0 }, "Version code must be greater than zero"},
	{"versionName", func(f api.AppVersionForm) bool { return NotBlank(f.VersionName) }, "Version name is required"},
	{"platform", func(f api.AppVersionForm) bool { return models.ValidPlatform(f.Platform) }, "Platform must be android, ios or both"},
}

func AppVersion(f api.AppVersionForm, _ bool) error {
	return appVersionRules.Validate(f)
}
