package services

import (
	"backend/entity"
	"backend/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type CreateRestaurantReq struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (s *RestaurantService) Create(req *CreateRestaurantReq) (*entity.Restaurant, error) {
	r := entity.Restaurant{Name: req.Name, Location: req.Location}
	if err := s.Repo.Create(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
