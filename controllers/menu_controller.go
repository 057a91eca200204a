package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /api/restaurants/:id/menu
func (ctl *MenuController) List(c *gin.Context) {
	out, err := ctl.Svc.ListForRestaurant(paramID(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/restaurants/:id/menu
func (ctl *MenuController) Add(c *gin.Context) {
	var req services.AddMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := ctl.Svc.AddItem(paramID(c, "id"), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Menu item added successfully", "id": id})
}

// PUT /api/restaurants/:id/menu/:itemId
func (ctl *MenuController) Update(c *gin.Context) {
	var req services.UpdateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Svc.UpdateItem(paramID(c, "id"), paramID(c, "itemId"), utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu item updated"})
}
