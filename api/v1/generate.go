package v1

// RenderRequest previews a single template against a variables block. The
// variables text may be a JSON object, a YAML map, or key=value lines.
type RenderRequest struct {
	Template  string `json:"template" binding:"required"`
	Variables string `json:"variables"`
}

type RenderResponseData struct {
	Output string `json:"output"`
}

type UploadExcelResponseData struct {
	Columns []string            `json:"columns"`
	Data    []map[string]string `json:"data"`
}

type GenerateConfigsRequest struct {
	ExcelData []map[string]string `json:"excel_data" binding:"required"`
}

// ConfigResult is one row's outcome. Exactly one of Config or Error is set
// unless the row was skipped for a missing required field.
type ConfigResult struct {
	Row          map[string]string `json:"row"`
	Success      bool              `json:"success"`
	Skipped      bool              `json:"skipped,omitempty"`
	TemplateName string            `json:"template_name,omitempty"`
	Config       string            `json:"config,omitempty"`
	Error        string            `json:"error,omitempty"`
}

type GenerateConfigsResponseData struct {
	BatchId         string         `json:"batch_id"`
	Configs         []ConfigResult `json:"configs"`
	SuccessRowCount int            `json:"success_row_count"`
	ErrorRowCount   int            `json:"error_row_count"`
	SkippedRowCount int            `json:"skipped_row_count"`
}
