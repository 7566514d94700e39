package service

import (
	"context"
	"fmt"
	"time"

	v1 "confgen/api/v1"
	"confgen/internal/repository"
	"confgen/pkg/render"
	"confgen/pkg/rowdata"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultRenderTimeout = 5 * time.Second

type GenerateService interface {
	RenderPreview(ctx context.Context, req *v1.RenderRequest) (*v1.RenderResponseData, error)
	Generate(ctx context.Context, rows []map[string]string) (*v1.GenerateConfigsResponseData, error)
}

func NewGenerateService(
	service *Service,
	conf *viper.Viper,
	engine render.Engine,
	templateService TemplateService,
	templateRepo repository.TemplateRepository,
) GenerateService {
	timeout := conf.GetDuration("render.timeout")
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &generateService{
		Service:         service,
		engine:          engine,
		templateService: templateService,
		templateRepo:    templateRepo,
		renderTimeout:   timeout,
	}
}

type generateService struct {
	*Service
	engine          render.Engine
	templateService TemplateService
	templateRepo    repository.TemplateRepository
	renderTimeout   time.Duration
}

func (s *generateService) render(ctx context.Context, templateText string, vars map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()
	return s.engine.Render(ctx, templateText, vars)
}

func (s *generateService) RenderPreview(ctx context.Context, req *v1.RenderRequest) (*v1.RenderResponseData, error) {
	vars, err := render.ParseVariables(req.Variables)
	if err != nil {
		return nil, err
	}
	out, err := s.render(ctx, req.Template, vars)
	if err != nil {
		return nil, err
	}
	return &v1.RenderResponseData{Output: out}, nil
}

// Generate renders one config per row. Row failures are data in the report:
// a missing required field skips the row, an unknown template or a renderer
// failure marks it as an error, and neither aborts the batch. Outcomes keep
// the normalized row order.
func (s *generateService) Generate(ctx context.Context, rawRows []map[string]string) (*v1.GenerateConfigsResponseData, error) {
	if len(rawRows) == 0 {
		return nil, v1.ErrRowsMissing
	}

	rows := make([]rowdata.Row, 0, len(rawRows))
	for _, r := range rawRows {
		if r == nil {
			r = map[string]string{}
		}
		rows = append(rows, rowdata.Row(r))
	}
	rows = rowdata.Normalize(rows)

	batchID, err := s.sid.GenString()
	if err != nil {
		s.logger.WithContext(ctx).Error("generate batch id failed", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	data := &v1.GenerateConfigsResponseData{
		BatchId: batchID,
		Configs: make([]v1.ConfigResult, 0, len(rows)),
	}

	for _, row := range rows {
		data.Configs = append(data.Configs, s.generateRow(ctx, row, data))
	}

	s.logger.WithContext(ctx).Info("generated configs",
		zap.String("batch_id", batchID),
		zap.Int("success", data.SuccessRowCount),
		zap.Int("error", data.ErrorRowCount),
		zap.Int("skipped", data.SkippedRowCount))
	return data, nil
}

func (s *generateService) generateRow(ctx context.Context, row rowdata.Row, data *v1.GenerateConfigsResponseData) v1.ConfigResult {
	result := v1.ConfigResult{Row: row}

	name := rowdata.TemplateName(row)
	if name == "" || rowdata.SwitchName(row) == "" || rowdata.PortField(row) == "" {
		result.Skipped = true
		result.Error = "missing required field"
		data.SkippedRowCount++
		return result
	}
	result.TemplateName = name

	tpl, err := s.templateService.ResolveByName(ctx, name)
	if err != nil {
		result.Error = err.Error()
		data.ErrorRowCount++
		return result
	}
	if tpl == nil {
		result.Error = fmt.Sprintf("unknown template '%s'", name)
		data.ErrorRowCount++
		return result
	}

	active, err := s.templateRepo.GetVersion(ctx, tpl.Id, tpl.ActiveVersion)
	if err != nil {
		s.logger.WithContext(ctx).Error("get active version failed", zap.Error(err))
		result.Error = v1.ErrInternalServerError.Error()
		data.ErrorRowCount++
		return result
	}
	if active == nil {
		result.Error = v1.ErrActiveVersionMissing.Error()
		data.ErrorRowCount++
		return result
	}

	out, err := s.render(ctx, active.TemplateContent, render.RowVariables(row))
	if err != nil {
		result.Error = err.Error()
		data.ErrorRowCount++
		return result
	}

	result.Success = true
	result.Config = out
	data.SuccessRowCount++
	return result
}
