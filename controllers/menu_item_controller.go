package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/pkg/resp"
	"backend/services"
)

type MenuItemController struct {
	Service *services.MenuItemService
}

func NewMenuItemController(s *services.MenuItemService) *MenuItemController {
	return &MenuItemController{Service: s}
}

// GET /restaurants/:id/menu
func (ctl *MenuItemController) ListByRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	items, err := ctl.Service.ListAvailable(uint(restID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /restaurants/:id/menu
func (ctl *MenuItemController) Create(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Create(uint(restID), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /menu/:id
func (ctl *MenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var patch services.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Update(uint(id), &patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}
