package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Svc *services.MessageService
}

func NewMessageController(svc *services.MessageService) *MessageController {
	return &MessageController{Svc: svc}
}

// GET /api/messages/:orderId
//
// Reading the thread marks the caller's incoming messages as read.
func (ctl *MessageController) List(c *gin.Context) {
	out, err := ctl.Svc.List(paramID(c, "orderId"), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// POST /api/messages/:orderId
func (ctl *MessageController) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Message content is required")
		return
	}

	id, err := ctl.Svc.Send(paramID(c, "orderId"), utils.CurrentUserID(c), req.Content)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Message sent", "id": id})
}

// PUT /api/messages/:orderId/read
func (ctl *MessageController) MarkRead(c *gin.Context) {
	if err := ctl.Svc.MarkRead(paramID(c, "orderId"), utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Messages marked as read"})
}
