package handler

import (
	"net/http"
	"strconv"

	v1 "confgen/api/v1"
	"confgen/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VersionHandler struct {
	*Handler
	templateService service.TemplateService
}

func NewVersionHandler(handler *Handler, templateService service.TemplateService) *VersionHandler {
	return &VersionHandler{
		Handler:         handler,
		templateService: templateService,
	}
}

func versionRef(ctx *gin.Context) (int64, int, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return 0, 0, false
	}
	version, err := strconv.Atoi(ctx.Param("version"))
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return 0, 0, false
	}
	return id, version, true
}

func (h *VersionHandler) CreateVersion(ctx *gin.Context) {
	id, ok := templateID(ctx)
	if !ok {
		return
	}

	req := new(v1.CreateVersionRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	version, err := h.templateService.CreateVersion(ctx, id, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("templateService.CreateVersion error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, v1.CreateVersionResponseData{Version: version})
}

func (h *VersionHandler) UpdateVersion(ctx *gin.Context) {
	id, version, ok := versionRef(ctx)
	if !ok {
		return
	}

	req := new(v1.UpdateVersionRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.templateService.UpdateVersion(ctx, id, version, req); err != nil {
		h.logger.WithContext(ctx).Error("templateService.UpdateVersion error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

func (h *VersionHandler) DeleteVersion(ctx *gin.Context) {
	id, version, ok := versionRef(ctx)
	if !ok {
		return
	}

	if err := h.templateService.DeleteVersion(ctx, id, version); err != nil {
		h.logger.WithContext(ctx).Error("templateService.DeleteVersion error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

func (h *VersionHandler) SetActiveVersion(ctx *gin.Context) {
	id, version, ok := versionRef(ctx)
	if !ok {
		return
	}

	if err := h.templateService.SetActiveVersion(ctx, id, version); err != nil {
		h.logger.WithContext(ctx).Error("templateService.SetActiveVersion error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

func (h *VersionHandler) GetVersion(ctx *gin.Context) {
	id, version, ok := versionRef(ctx)
	if !ok {
		return
	}

	data, err := h.templateService.GetVersion(ctx, id, version)
	if err != nil {
		h.logger.WithContext(ctx).Error("templateService.GetVersion error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}

func (h *VersionHandler) ListVersions(ctx *gin.Context) {
	id, ok := templateID(ctx)
	if !ok {
		return
	}

	data, err := h.templateService.ListVersions(ctx, id)
	if err != nil {
		h.logger.WithContext(ctx).Error("templateService.ListVersions error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}
