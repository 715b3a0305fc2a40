package models

type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Pincode   string  `json:"pincode"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Store struct {
	ID            string   `json:"_id"`
	StoreName     string   `json:"storeName"`
	StoreCode     string   `json:"storeCode"`
	Location      Location `json:"location"`
	ManagerName   string   `json:"managerName"`
	ManagerPhone  string   `json:"managerPhone"`
	ManagerEmail  string   `json:"managerEmail,omitempty"`
	OpeningHours  string   `json:"openingHours"`
	Notes         string   `json:"notes,omitempty"`
	StoreImageURL string   `json:"storeImageUrl"`
	IsActive      bool     `json:"isActive"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

type DeliveryBoy struct {
	ID              string `json:"_id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Pincode         string `json:"pincode"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	DocumentURL     string `json:"documentUrl,omitempty"`
	IsActive        bool   `json:"isActive"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}
