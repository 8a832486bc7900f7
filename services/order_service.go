package services

import (
	"errors"

	"gorm.io/gorm"

	"backend/entity"
	"backend/repository"
)

var (
	// ErrInvalidMenuItem means an order referenced a menu item that does not
	// exist. The whole order is rejected before anything is written.
	ErrInvalidMenuItem = errors.New("invalid menu item")

	// ErrUnknownStatus means a status update carried a value outside the
	// known set.
	ErrUnknownStatus = errors.New("unknown order status")
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderReq struct {
	CustomerID   uint          `json:"customerId"`
	RestaurantID uint          `json:"restaurantId"`
	Items        []OrderItemIn `json:"items"`
}

type OrderDetail struct {
	ID           uint               `json:"id"`
	CustomerID   uint               `json:"customerId"`
	RestaurantID uint               `json:"restaurantId"`
	TotalPrice   float64            `json:"totalPrice"`
	Status       entity.OrderStatus `json:"status"`
	Items        []entity.OrderItem `json:"orderItems"`
}

// Create validates every line item against the menu, totals the price, then
// persists the order and its items in one transaction. Validation runs in
// input order and stops at the first missing menu item, so nothing is written
// for a rejected order. An empty items slice is allowed and yields a zero
// total. Quantities and item availability are taken as given.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	var totalPrice float64
	rows := make([]entity.OrderItem, 0, len(req.Items))

	for _, it := range req.Items {
		m, err := s.Repo.GetMenuItemBasics(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidMenuItem
			}
			return nil, err
		}
		totalPrice += m.Price * float64(it.Quantity)
		rows = append(rows, entity.OrderItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}

	order := entity.Order{
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		TotalPrice:   totalPrice,
		Status:       entity.OrderStatusPlaced,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Detail(id uint) (*OrderDetail, error) {
	o, err := s.Repo.FindWithItems(id)
	if err != nil {
		return nil, err
	}
	if o.OrderItems == nil {
		o.OrderItems = []entity.OrderItem{}
	}
	return &OrderDetail{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		TotalPrice:   o.TotalPrice,
		Status:       o.Status,
		Items:        o.OrderItems,
	}, nil
}

// UpdateStatus overwrites the status with any member of the known set; there
// is no transition sequence to respect.
func (s *OrderService) UpdateStatus(id uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, ErrUnknownStatus
	}
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}
