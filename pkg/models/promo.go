package models

type OfferText struct {
	ID        string `json:"_id"`
	Text      string `json:"text"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type OfferImage struct {
	ID        string `json:"_id"`
	ImageURL  string `json:"imageUrl"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Slider struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	RedirectURL string `json:"redirectUrl"`
	SortOrder   int    `json:"sortOrder"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
