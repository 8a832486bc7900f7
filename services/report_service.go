package services

import (
	"errors"

	"gorm.io/gorm"

	"backend/repository"
)

const topN = 5

type ReportService struct {
	Repo         *repository.ReportRepository
	CustomerRepo *repository.CustomerRepository
}

func NewReportService(repo *repository.ReportRepository, customerRepo *repository.CustomerRepository) *ReportService {
	return &ReportService{Repo: repo, CustomerRepo: customerRepo}
}

type RevenueOut struct {
	TotalRevenue float64 `json:"totalRevenue"`
}

// RestaurantRevenue counts every order regardless of status, Cancelled
// included.
func (s *ReportService) RestaurantRevenue(restID uint) (*RevenueOut, error) {
	total, err := s.Repo.RestaurantRevenue(restID)
	if err != nil {
		return nil, err
	}
	return &RevenueOut{TotalRevenue: total}, nil
}

func (s *ReportService) TopMenuItems() ([]repository.MenuItemSales, error) {
	return s.Repo.TopMenuItems(topN)
}

type TopCustomer struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	TotalOrders int64  `json:"totalOrders"`
}

// TopCustomers ranks customers by order count, then merges in contact fields
// with one lookup per group. A group whose customer record no longer exists
// is dropped from the result.
func (s *ReportService) TopCustomers() ([]TopCustomer, error) {
	groups, err := s.Repo.TopCustomerGroups(topN)
	if err != nil {
		return nil, err
	}

	out := make([]TopCustomer, 0, len(groups))
	for _, g := range groups {
		c, err := s.CustomerRepo.FindContact(g.CustomerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, TopCustomer{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			TotalOrders: g.TotalOrders,
		})
	}
	return out, nil
}
