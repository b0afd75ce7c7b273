package user

import (
	"net/http"

	usermodel "DreamMMO/module/user/model"
	"DreamMMO/module/user/service"
	"DreamMMO/tools/errs"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(c *gin.Context) {
	var req usermodel.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrBadRequest.WithDetail(err.Error()))
		return
	}

	userID, token, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrLoginTaken) {
			c.JSON(http.StatusBadRequest, errs.ErrLoginTaken)
			return
		}
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"token":   token,
		"user_id": userID,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req usermodel.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrBadRequest.WithDetail(err.Error()))
		return
	}

	userID, token, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, errs.ErrBadCredentials)
			return
		}
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"token":   token,
		"user_id": userID,
	})
}
