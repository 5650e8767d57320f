package transport

// Field names on the wire are PascalCase to match the checkout client.
type DeliveryInfoRequest struct {
	FirstName    string  `json:"FirstName"`
	MiddleName   *string `json:"MiddleName"`
	LastName     string  `json:"LastName"`
	Address      string  `json:"Address"`
	City         string  `json:"City"`
	Province     string  `json:"Province"`
	Landmark     *string `json:"Landmark"`
	EmailAddress *string `json:"EmailAddress"`
	PhoneNumber  string  `json:"PhoneNumber"`
	Notes        *string `json:"Notes"`
}

type DeliveryInfoResponse struct {
	FirstName    string  `json:"FirstName"`
	MiddleName   *string `json:"MiddleName"`
	LastName     string  `json:"LastName"`
	Address      string  `json:"Address"`
	City         string  `json:"City"`
	Province     string  `json:"Province"`
	Landmark     *string `json:"Landmark"`
	EmailAddress *string `json:"EmailAddress"`
	PhoneNumber  string  `json:"PhoneNumber"`
	Notes        *string `json:"Notes"`
}

type AddDeliveryInfoResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"order_id"`
}

type OrderItemView struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// DeliveryOrderView is the denormalized row the delivery management screen
// renders. AssignedRider stays null until rider assignment is linked in.
type DeliveryOrderView struct {
	ID            uint            `json:"id"`
	CustomerName  string          `json:"customerName"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	OrderedAt     string          `json:"orderedAt"`
	CurrentStatus string          `json:"currentStatus"`
	PaymentMethod string          `json:"paymentMethod"`
	Total         float64         `json:"total"`
	Notes         *string         `json:"notes"`
	Items         []OrderItemView `json:"items"`
	AssignedRider *string         `json:"assignedRider"`
}
