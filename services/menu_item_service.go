package services

import (
	"backend/entity"
	"backend/repository"
)

type MenuItemService struct {
	Repo *repository.MenuItemRepository
}

func NewMenuItemService(repo *repository.MenuItemRepository) *MenuItemService {
	return &MenuItemService{Repo: repo}
}

type CreateMenuItemReq struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}

// Create scopes the item to the restaurant from the path. The restaurant is
// not checked for existence.
func (s *MenuItemService) Create(restID uint, req *CreateMenuItemReq) (*entity.MenuItem, error) {
	m := entity.MenuItem{
		Name:         req.Name,
		Price:        req.Price,
		IsAvailable:  req.IsAvailable,
		RestaurantID: restID,
	}
	if err := s.Repo.Create(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MenuItemService) ListAvailable(restID uint) ([]entity.MenuItem, error) {
	return s.Repo.FindAvailableByRestaurant(restID)
}

// MenuItemPatch enumerates the mutable fields; absent fields stay untouched.
type MenuItemPatch struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	IsAvailable  *bool    `json:"isAvailable"`
	RestaurantID *uint    `json:"restaurantId"`
}

func (s *MenuItemService) Update(id uint, patch *MenuItemPatch) (*entity.MenuItem, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.IsAvailable != nil {
		fields["is_available"] = *patch.IsAvailable
	}
	if patch.RestaurantID != nil {
		fields["restaurant_id"] = *patch.RestaurantID
	}
	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(id)
}
