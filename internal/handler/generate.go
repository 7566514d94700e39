package handler

import (
	"net/http"

	v1 "confgen/api/v1"
	"confgen/internal/service"
	"confgen/pkg/excel"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GenerateHandler struct {
	*Handler
	generateService service.GenerateService
}

func NewGenerateHandler(handler *Handler, generateService service.GenerateService) *GenerateHandler {
	return &GenerateHandler{
		Handler:         handler,
		generateService: generateService,
	}
}

// The three generation endpoints keep the flat response shapes the bundled
// front end was written against, instead of the generic envelope.

// Render previews one template against a hand-edited variables block.
// Renderer and variable-parse failures come back as success:false with the
// message shown inline in the editor pane.
func (h *GenerateHandler) Render(ctx *gin.Context) {
	req := new(v1.RenderRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": v1.ErrBadRequest.Error()})
		return
	}

	data, err := h.generateService.RenderPreview(ctx, req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "output": data.Output})
}

func (h *GenerateHandler) UploadExcel(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no file uploaded"})
		return
	}

	f, err := file.Open()
	if err != nil {
		h.logger.WithContext(ctx).Error("open upload failed", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": v1.ErrInvalidUpload.Error()})
		return
	}
	defer f.Close()

	sheet, err := excel.Parse(f)
	if err != nil {
		h.logger.WithContext(ctx).Warn("parse upload failed", zap.String("filename", file.Filename), zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": v1.ErrInvalidUpload.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"columns": sheet.Columns,
		"data":    sheet.Rows,
	})
}

func (h *GenerateHandler) GenerateConfigs(ctx *gin.Context) {
	req := new(v1.GenerateConfigsRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": v1.ErrBadRequest.Error()})
		return
	}

	data, err := h.generateService.Generate(ctx, req.ExcelData)
	if err != nil {
		h.logger.WithContext(ctx).Error("generateService.Generate error", zap.Error(err))
		ctx.JSON(httpStatus(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":           true,
		"batch_id":          data.BatchId,
		"configs":           data.Configs,
		"success_row_count": data.SuccessRowCount,
		"error_row_count":   data.ErrorRowCount,
		"skipped_row_count": data.SkippedRowCount,
	})
}
