package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /api/cart
func (ctl *CartController) Get(c *gin.Context) {
	out, err := ctl.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/cart
func (ctl *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Added to cart"})
}

// PUT /api/cart/:id
func (ctl *CartController) Update(c *gin.Context) {
	var req services.UpdateCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.UpdateLine(utils.CurrentUserID(c), paramID(c, "id"), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart updated"})
}

// DELETE /api/cart/:id
func (ctl *CartController) Remove(c *gin.Context) {
	if err := ctl.Svc.RemoveLine(utils.CurrentUserID(c), paramID(c, "id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item removed from cart"})
}

// DELETE /api/cart/clear
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart cleared"})
}
