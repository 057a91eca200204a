package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/orders — checkout
func (ctl *OrderController) Create(c *gin.Context) {
	orderIDs, err := ctl.Svc.Checkout(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{
		"message":   "Order placed successfully",
		"order_ids": orderIDs,
	})
}

// GET /api/orders/history
func (ctl *OrderController) History(c *gin.Context) {
	out, err := ctl.Svc.History(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	out, err := ctl.Svc.Detail(paramID(c, "id"), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/orders/:id/status — restaurant owner only
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid status")
		return
	}

	if err := ctl.Svc.UpdateStatus(paramID(c, "id"), utils.CurrentUserID(c), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order status updated"})
}
