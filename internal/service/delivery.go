package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kmdeleon/ordering_service/internal/models"
	"github.com/kmdeleon/ordering_service/internal/repo"
	"github.com/kmdeleon/ordering_service/internal/transport"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation")     // 400
	ErrNotFound   = errors.New("not found")      // 404
	ErrNotPaid    = errors.New("order not paid") // 400
)

type DeliveryService struct {
	Repo *repo.GormRepo
}

func (s *DeliveryService) GetDeliveryInfo(ctx context.Context, orderID uint) (*transport.DeliveryInfoResponse, error) {
	info, err := s.Repo.GetDeliveryInfo(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("delivery info for order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}

	return &transport.DeliveryInfoResponse{
		FirstName:    info.FirstName,
		MiddleName:   info.MiddleName,
		LastName:     info.LastName,
		Address:      info.Address,
		City:         info.City,
		Province:     info.Province,
		Landmark:     info.Landmark,
		EmailAddress: info.EmailAddress,
		PhoneNumber:  info.PhoneNumber,
		Notes:        info.Notes,
	}, nil
}

// AddDeliveryInfo attaches delivery details to the caller's newest pending
// order. The order must already be paid. Returns the order the row was linked
// to.
func (s *DeliveryService) AddDeliveryInfo(ctx context.Context, username string, req transport.DeliveryInfoRequest) (uint, error) {
	if err := validateDeliveryInfo(req); err != nil {
		return 0, err
	}

	order, err := s.Repo.LatestPendingOrder(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("no pending order for %q: %w", username, ErrNotFound)
		}
		return 0, err
	}

	if order.PaymentStatus != models.PaymentStatusPaid {
		return 0, fmt.Errorf("order %d has payment status %q: %w", order.OrderID, order.PaymentStatus, ErrNotPaid)
	}

	info := models.DeliveryInfo{
		OrderID:      order.OrderID,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Address:      req.Address,
		City:         req.City,
		Province:     req.Province,
		Landmark:     req.Landmark,
		EmailAddress: req.EmailAddress,
		PhoneNumber:  req.PhoneNumber,
		Notes:        req.Notes,
	}

	if err := s.Repo.CreateDeliveryInfo(ctx, &info); err != nil {
		return 0, err
	}

	return order.OrderID, nil
}

func validateDeliveryInfo(req transport.DeliveryInfoRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"FirstName", req.FirstName},
		{"LastName", req.LastName},
		{"Address", req.Address},
		{"City", req.City},
		{"Province", req.Province},
		{"PhoneNumber", req.PhoneNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s required", ErrValidation, f.name)
		}
	}
	return nil
}

// ListDeliveryOrders builds the admin delivery board: every order, newest
// first, with delivery details when present and line items fetched per order.
func (s *DeliveryService) ListDeliveryOrders(ctx context.Context) ([]transport.DeliveryOrderView, error) {
	rows, err := s.Repo.ListOrdersWithDelivery(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]transport.DeliveryOrderView, 0, len(rows))
	for _, row := range rows {
		items, err := s.Repo.ListOrderItems(ctx, row.OrderID)
		if err != nil {
			return nil, err
		}

		itemViews := make([]transport.OrderItemView, 0, len(items))
		for _, it := range items {
			itemViews = append(itemViews, transport.OrderItemView{
				Name:     it.ProductName,
				Quantity: it.Quantity,
				Price:    it.Price,
			})
		}

		views = append(views, transport.DeliveryOrderView{
			ID:            row.OrderID,
			CustomerName:  customerName(row.FirstName, row.MiddleName, row.LastName),
			Phone:         deref(row.PhoneNumber),
			Address:       joinAddress(row.Address, row.City, row.Province),
			OrderedAt:     row.OrderDate.Format("2006-01-02 15:04:05"),
			CurrentStatus: NormalizeStatus(row.Status),
			PaymentMethod: row.PaymentMethod,
			Total:         totalOrZero(row.TotalAmount),
			Notes:         row.Notes,
			Items:         itemViews,
			AssignedRider: nil, // pending the RiderOrders link
		})
	}

	return views, nil
}

// NormalizeStatus turns a status label into its compact form,
// e.g. "Out For Delivery" -> "outfordelivery".
func NormalizeStatus(status string) string {
	return strings.ReplaceAll(strings.ToLower(status), " ", "")
}

func customerName(first, middle, last *string) string {
	parts := make([]string, 0, 3)
	for _, p := range []*string{first, middle, last} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func joinAddress(parts ...*string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != nil && *p != "" {
			out = append(out, *p)
		}
	}
	return strings.Join(out, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func totalOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
