package handler

import (
	"net/http"

	v1 "confgen/api/v1"
	"confgen/internal/repository"
	"confgen/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MetadataHandler struct {
	*Handler
	metadataService service.MetadataService
}

func NewMetadataHandler(handler *Handler, metadataService service.MetadataService) *MetadataHandler {
	return &MetadataHandler{
		Handler:         handler,
		metadataService: metadataService,
	}
}

// List/Add/Remove/RemoveByBody serve all three categories; the router binds
// each category's routes with the matching constant.

func (h *MetadataHandler) List(category repository.MetadataCategory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		data, err := h.metadataService.List(ctx, category)
		if err != nil {
			h.logger.WithContext(ctx).Error("metadataService.List error", zap.Error(err))
			v1.HandleError(ctx, httpStatus(err), err, nil)
			return
		}
		v1.HandleSuccess(ctx, data)
	}
}

func (h *MetadataHandler) Add(category repository.MetadataCategory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req := new(v1.AddMetadataValueRequest)
		if err := ctx.ShouldBindJSON(req); err != nil {
			v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
			return
		}

		if err := h.metadataService.Add(ctx, category, req.Name, req.Description); err != nil {
			h.logger.WithContext(ctx).Error("metadataService.Add error", zap.Error(err))
			v1.HandleError(ctx, httpStatus(err), err, nil)
			return
		}
		v1.HandleSuccess(ctx, nil)
	}
}

func (h *MetadataHandler) Remove(category repository.MetadataCategory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		name := ctx.Param("name")
		if name == "" {
			v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
			return
		}

		if err := h.metadataService.Remove(ctx, category, name); err != nil {
			h.logger.WithContext(ctx).Error("metadataService.Remove error", zap.Error(err))
			v1.HandleError(ctx, httpStatus(err), err, nil)
			return
		}
		v1.HandleSuccess(ctx, nil)
	}
}

// RemoveByBody keeps the legacy POST …/delete contract used by the bundled
// front end.
func (h *MetadataHandler) RemoveByBody(category repository.MetadataCategory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req := new(v1.RemoveMetadataValueRequest)
		if err := ctx.ShouldBindJSON(req); err != nil {
			v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
			return
		}

		if err := h.metadataService.Remove(ctx, category, req.Name); err != nil {
			h.logger.WithContext(ctx).Error("metadataService.Remove error", zap.Error(err))
			v1.HandleError(ctx, httpStatus(err), err, nil)
			return
		}
		v1.HandleSuccess(ctx, nil)
	}
}
