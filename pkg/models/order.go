package models

// Order status values recognised by the backend.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled,
}

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

var PaymentStatuses = []string{PaymentPending, PaymentPaid, PaymentFailed}

func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type OrderUser struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
}

type OrderItem struct {
	Name          string   `json:"name"`
	Quantity      int      `json:"quantity"`
	Unit          string   `json:"unit"`
	Price         float64  `json:"price"`
	OfferPrice    float64  `json:"offerPrice"`
	PercentageOff float64  `json:"percentageOff"`
	LineTotal     float64  `json:"lineTotal"`
	Images        []string `json:"images"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// Order as served by the platform API. A non-nil Store marks a store order;
// otherwise it is a global order.
type Order struct {
	ID              string          `json:"_id"`
	User            OrderUser       `json:"user"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	TotalDiscount   float64         `json:"totalDiscount"`
	GrandTotal      float64         `json:"grandTotal"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Store           *Store          `json:"store,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAtIST    string          `json:"createdAtIST"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}
