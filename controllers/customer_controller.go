package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/pkg/resp"
	"backend/services"
)

type CustomerController struct {
	Service *services.CustomerService
}

func NewCustomerController(s *services.CustomerService) *CustomerController {
	return &CustomerController{Service: s}
}

// POST /customers
func (ctl *CustomerController) Create(c *gin.Context) {
	var req services.CreateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customer, err := ctl.Service.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, customer)
}

// GET /customers/:id
func (ctl *CustomerController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	customer, err := ctl.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, customer)
}

// GET /customers/:id/orders
func (ctl *CustomerController) Orders(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	orders, err := ctl.Service.ListOrders(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
