package character

import (
	"net/http"

	midsec "DreamMMO/middleware/security"
	charmodel "DreamMMO/module/character/model"
	"DreamMMO/module/character/service"
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

func (h *Handler) Create(c *gin.Context) {
	userID, ok := midsec.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
		return
	}

	var req charmodel.CreateCharacterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrBadRequest.WithDetail(err.Error()))
		return
	}

	charID, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, errs.ErrCharacterNameTaken) {
			c.JSON(http.StatusBadRequest, errs.ErrCharacterNameTaken)
			return
		}
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"character_id": charID,
	})
}

func (h *Handler) Get(c *gin.Context) {
	userID, ok := midsec.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
		return
	}

	ch, err := h.svc.FirstByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrCharacterMissing) {
			c.JSON(http.StatusNotFound, errs.ErrCharacterMissing)
			return
		}
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, ch)
}
