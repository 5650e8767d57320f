package models

import "time"

const (
	OrderStatusPending = "Pending"

	// PaymentStatusPaid must match exactly; "paid" is not accepted.
	PaymentStatusPaid = "Paid"
)

// Order rows are created by the checkout flow; this service only reads them.
type Order struct {
	OrderID       uint      `gorm:"primaryKey"      json:"order_id"`
	UserName      string    `gorm:"index;not null"  json:"username"`
	OrderDate     time.Time `gorm:"not null"        json:"order_date"`
	Status        string    `gorm:"not null"        json:"status"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   *float64  `json:"total_amount"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey"                 json:"id"`
	OrderID     uint    `gorm:"index;not null"             json:"order_id"`
	ProductName string  `gorm:"not null"                   json:"product_name"`
	Quantity    int     `gorm:"not null;check:quantity>0"  json:"quantity"`
	Price       float64 `gorm:"not null"                   json:"price"`
}

// DeliveryInfo has no unique index on OrderID: repeated submissions for the
// same order create separate rows.
type DeliveryInfo struct {
	ID           uint    `gorm:"primaryKey"     json:"id"`
	OrderID      uint    `gorm:"index;not null" json:"order_id"`
	FirstName    string  `gorm:"not null"       json:"first_name"`
	MiddleName   *string `json:"middle_name"`
	LastName     string  `gorm:"not null"       json:"last_name"`
	Address      string  `gorm:"not null"       json:"address"`
	City         string  `gorm:"not null"       json:"city"`
	Province     string  `gorm:"not null"       json:"province"`
	Landmark     *string `json:"landmark"`
	EmailAddress *string `json:"email_address"`
	PhoneNumber  string  `gorm:"not null"       json:"phone_number"`
	Notes        *string `json:"notes"`
}
