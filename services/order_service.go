package services

import (
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

// Checkout converts the caller's cart into one order per restaurant.
//
// The whole conversion runs in a single transaction: cart lines are read
// under a row lock, partitioned by restaurant in first-seen order, each
// partition priced at the current menu price and snapshotted into an order,
// and the cart cleared in one final step. Any failure (a vanished restaurant,
// a write error) rolls back every order and leaves the cart untouched.
func (s *OrderService) Checkout(userID uint) ([]uint, error) {
	var orderIDs []uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.FindLinesForCheckout(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.Validation("Cart is empty")
		}

		// partition by restaurant, insertion order of first line
		partitions := map[uint][]entity.CartItem{}
		var restaurantOrder []uint
		for _, line := range lines {
			if _, seen := partitions[line.RestaurantID]; !seen {
				restaurantOrder = append(restaurantOrder, line.RestaurantID)
			}
			partitions[line.RestaurantID] = append(partitions[line.RestaurantID], line)
		}

		for _, restID := range restaurantOrder {
			part := partitions[restID]

			rest, err := s.Repo.FindRestaurant(tx, restID)
			if err != nil {
				return err
			}

			var total float64
			for _, line := range part {
				total += line.MenuItem.Price * float64(line.Quantity)
			}

			order := entity.Order{
				UserID:         userID,
				RestaurantID:   restID,
				TotalPrice:     total,
				Status:         entity.OrderStatusPending,
				PickupTime:     rest.PickupTime,
				PickupLocation: rest.PickupLocation,
			}
			if err := s.Repo.Create(tx, &order); err != nil {
				return err
			}

			for _, line := range part {
				item := entity.OrderItem{
					OrderID:    order.ID,
					MenuItemID: line.MenuItemID,
					Quantity:   line.Quantity,
					Price:      line.MenuItem.Price,
					Note:       line.Note,
				}
				if err := s.Repo.CreateItem(tx, &item); err != nil {
					return err
				}
			}

			orderIDs = append(orderIDs, order.ID)
		}

		return s.CartRepo.DeleteAllForUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return orderIDs, nil
}

type OrderItemOut struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Note     string  `json:"note"`
}

type OrderHistoryOut struct {
	ID             uint           `json:"id"`
	RestaurantName string         `json:"restaurant_name"`
	TotalPrice     float64        `json:"total_price"`
	Status         string         `json:"status"`
	PickupTime     string         `json:"pickup_time"`
	PickupLocation string         `json:"pickup_location"`
	CreatedAt      string         `json:"created_at"`
	Items          []OrderItemOut `json:"items"`
}

func orderItems(o *entity.Order) []OrderItemOut {
	items := make([]OrderItemOut, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, OrderItemOut{
			Name:     it.MenuItem.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Note:     it.Note,
		})
	}
	return items
}

func (s *OrderService) History(userID uint) ([]OrderHistoryOut, error) {
	orders, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	out := make([]OrderHistoryOut, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		out = append(out, OrderHistoryOut{
			ID:             o.ID,
			RestaurantName: o.Restaurant.Name,
			TotalPrice:     o.TotalPrice,
			Status:         o.Status,
			PickupTime:     o.PickupTime,
			PickupLocation: o.PickupLocation,
			CreatedAt:      o.CreatedAt.Format("2006-01-02T15:04:05"),
			Items:          orderItems(o),
		})
	}
	return out, nil
}

type OrderDetailOut struct {
	ID                uint           `json:"id"`
	RestaurantName    string         `json:"restaurant_name"`
	RestaurantOwnerID uint           `json:"restaurant_owner_id"`
	CustomerID        uint           `json:"customer_id"`
	TotalPrice        float64        `json:"total_price"`
	Status            string         `json:"status"`
	PickupTime        string         `json:"pickup_time"`
	PickupLocation    string         `json:"pickup_location"`
	CreatedAt         string         `json:"created_at"`
	Items             []OrderItemOut `json:"items"`
}

// Detail is visible to the two parties only: the orderer and the restaurant
// owner.
func (s *OrderService) Detail(orderID, callerID uint) (*OrderDetailOut, error) {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != callerID && o.Restaurant.UserID != callerID {
		return nil, apperr.ErrForbidden
	}

	return &OrderDetailOut{
		ID:                o.ID,
		RestaurantName:    o.Restaurant.Name,
		RestaurantOwnerID: o.Restaurant.UserID,
		CustomerID:        o.UserID,
		TotalPrice:        o.TotalPrice,
		Status:            o.Status,
		PickupTime:        o.PickupTime,
		PickupLocation:    o.PickupLocation,
		CreatedAt:         o.CreatedAt.Format("2006-01-02T15:04:05"),
		Items:             orderItems(o),
	}, nil
}

// UpdateStatus lets the restaurant owner move an order between the four
// statuses in any direction.
func (s *OrderService) UpdateStatus(orderID, callerID uint, status string) error {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		return err
	}
	if o.Restaurant.UserID != callerID {
		return apperr.ErrForbidden
	}
	if !entity.IsValidOrderStatus(status) {
		return apperr.Validation("Invalid status")
	}
	return s.Repo.UpdateStatus(orderID, status)
}
