package services

import (
	"backend/entity"
	"backend/repository"
)

type CustomerService struct {
	Repo      *repository.CustomerRepository
	OrderRepo *repository.OrderRepository
}

func NewCustomerService(repo *repository.CustomerRepository, orderRepo *repository.OrderRepository) *CustomerService {
	return &CustomerService{Repo: repo, OrderRepo: orderRepo}
}

type CreateCustomerReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

func (s *CustomerService) Create(req *CreateCustomerReq) (*entity.Customer, error) {
	c := entity.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := s.Repo.Create(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	return s.Repo.FindByID(id)
}

func (s *CustomerService) ListOrders(customerID uint) ([]entity.Order, error) {
	return s.OrderRepo.ListByCustomer(customerID)
}
