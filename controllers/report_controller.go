package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{Service: s}
}

// GET /restaurants/:id/revenue
func (ctl *ReportController) RestaurantRevenue(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	out, err := ctl.Service.RestaurantRevenue(uint(restID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /menu/top-items
func (ctl *ReportController) TopMenuItems(c *gin.Context) {
	rows, err := ctl.Service.TopMenuItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /customers/top
func (ctl *ReportController) TopCustomers(c *gin.Context) {
	rows, err := ctl.Service.TopCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	resp.OK(c, rows)
}
