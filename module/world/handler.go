package world

import (
	"net/http"

	"DreamMMO/module/world/service"
	"DreamMMO/tools/errs"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Locations(c *gin.Context) {
	out, err := h.svc.Locations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Items(c *gin.Context) {
	out, err := h.svc.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Quests(c *gin.Context) {
	out, err := h.svc.Quests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, out)
}
