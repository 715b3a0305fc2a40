package models

// Category is a product category as served by the platform API.
type Category struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CategoryRef is the embedded category reference carried on products.
type CategoryRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

type Product struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	Category      CategoryRef `json:"category"`
	Price         float64     `json:"price"`
	OfferPrice    float64     `json:"offerPrice"`
	StockQuantity int         `json:"stockQuantity"`
	Unit          string      `json:"unit"`
	Description   string      `json:"description"`
	Images        []string    `json:"images"`
	IsActive      bool        `json:"isActive"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}

// Units the backend accepts for products.
var Units = []string{
	"piece", "pcs", "kg", "g", "mg", "litre", "ml", "dozen", "packet",
	"box", "meter", "cm", "set", "pair", "bottle", "bag", "roll", "unit",
}

func ValidUnit(u string) bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}
