package handler

import (
	"net/http"
	"strconv"

	v1 "confgen/api/v1"
	"confgen/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TemplateHandler struct {
	*Handler
	templateService service.TemplateService
}

func NewTemplateHandler(handler *Handler, templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		Handler:         handler,
		templateService: templateService,
	}
}

func templateID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return 0, false
	}
	return id, true
}

func (h *TemplateHandler) CreateTemplate(ctx *gin.Context) {
	req := new(v1.CreateTemplateRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	id, err := h.templateService.CreateTemplate(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("templateService.CreateTemplate error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, v1.CreateTemplateResponseData{Id: id})
}

func (h *TemplateHandler) UpdateTemplate(ctx *gin.Context) {
	id, ok := templateID(ctx)
	if !ok {
		return
	}

	req := new(v1.UpdateTemplateRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.templateService.UpdateTemplateMetadata(ctx, id, req); err != nil {
		h.logger.WithContext(ctx).Error("templateService.UpdateTemplateMetadata error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

func (h *TemplateHandler) DeleteTemplate(ctx *gin.Context) {
	id, ok := templateID(ctx)
	if !ok {
		return
	}

	if err := h.templateService.DeleteTemplate(ctx, id); err != nil {
		h.logger.WithContext(ctx).Error("templateService.DeleteTemplate error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

func (h *TemplateHandler) GetTemplate(ctx *gin.Context) {
	id, ok := templateID(ctx)
	if !ok {
		return
	}

	data, err := h.templateService.GetTemplate(ctx, id)
	if err != nil {
		h.logger.WithContext(ctx).Error("templateService.GetTemplate error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}

func (h *TemplateHandler) ListTemplates(ctx *gin.Context) {
	req := new(v1.ListTemplatesRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	data, err := h.templateService.ListTemplates(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("templateService.ListTemplates error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}
