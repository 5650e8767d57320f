package repo

import (
	"context"
	"time"

	"github.com/kmdeleon/ordering_service/internal/models"
	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) GetDeliveryInfo(ctx context.Context, orderID uint) (*models.DeliveryInfo, error) {
	var info models.DeliveryInfo
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// LatestPendingOrder returns the newest order still waiting for delivery
// details. Ties on order_date fall to whichever row the database yields first.
func (r *GormRepo) LatestPendingOrder(ctx context.Context, username string) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Where("user_name = ? AND status = ?", username, models.OrderStatusPending).
		Order("order_date DESC").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) CreateDeliveryInfo(ctx context.Context, info *models.DeliveryInfo) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(info).Error
	})
}

// OrderWithDelivery is one row of the admin listing join. Delivery columns are
// pointers so orders without a delivery row scan as NULLs.
type OrderWithDelivery struct {
	OrderID       uint
	UserName      string
	OrderDate     time.Time
	Status        string
	PaymentMethod string
	TotalAmount   *float64
	FirstName     *string
	MiddleName    *string
	LastName      *string
	PhoneNumber   *string
	Address       *string
	City          *string
	Province      *string
	Notes         *string
	Landmark      *string
}

func (r *GormRepo) ListOrdersWithDelivery(ctx context.Context) ([]OrderWithDelivery, error) {
	var rows []OrderWithDelivery
	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select(`orders.order_id, orders.user_name, orders.order_date, orders.status,
			orders.payment_method, orders.total_amount,
			delivery_infos.first_name, delivery_infos.middle_name, delivery_infos.last_name,
			delivery_infos.phone_number, delivery_infos.address, delivery_infos.city,
			delivery_infos.province, delivery_infos.notes, delivery_infos.landmark`).
		Joins("LEFT JOIN delivery_infos ON delivery_infos.order_id = orders.order_id").
		Order("orders.order_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) ListOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
