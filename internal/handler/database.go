package handler

import (
	"io"
	"net/http"

	v1 "confgen/api/v1"
	"confgen/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DatabaseHandler struct {
	*Handler
	databaseService service.DatabaseService
}

func NewDatabaseHandler(handler *Handler, databaseService service.DatabaseService) *DatabaseHandler {
	return &DatabaseHandler{
		Handler:         handler,
		databaseService: databaseService,
	}
}

func (h *DatabaseHandler) Export(ctx *gin.Context) {
	raw, filename, err := h.databaseService.Export(ctx)
	if err != nil {
		h.logger.WithContext(ctx).Error("databaseService.Export error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/json", raw)
}

func (h *DatabaseHandler) Import(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	f, err := file.Open()
	if err != nil {
		h.logger.WithContext(ctx).Error("open snapshot upload failed", zap.Error(err))
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrInvalidSnapshot, nil)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		h.logger.WithContext(ctx).Error("read snapshot upload failed", zap.Error(err))
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrInvalidSnapshot, nil)
		return
	}

	data, err := h.databaseService.Import(ctx, raw)
	if err != nil {
		h.logger.WithContext(ctx).Error("databaseService.Import error", zap.Error(err))
		v1.HandleError(ctx, httpStatus(err), err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}
