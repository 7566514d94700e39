package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"confgen/internal/handler"
	"confgen/internal/model"
	"confgen/internal/repository"
	"confgen/internal/router"
	"confgen/internal/service"
	"confgen/pkg/log"
	"confgen/pkg/render"
	"confgen/pkg/sid"

	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var httpTestSeq atomic.Int64

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:httptest_%d?mode=memory&cache=shared", httpTestSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Template{},
		&model.TemplateVersion{},
		&model.HostType{},
		&model.PortType{},
		&model.SwitchOSType{},
	))

	conf := viper.New()
	conf.Set("env", "test")
	logger := &log.Logger{Logger: zap.NewNop()}

	repo := repository.NewRepository(logger, db)
	svc := service.NewService(repository.NewTransaction(repo), logger, sid.NewSid())
	templateRepo := repository.NewTemplateRepository(repo)
	metadataRepo := repository.NewMetadataRepository(repo)
	templateService := service.NewTemplateService(svc, templateRepo, metadataRepo)
	metadataService := service.NewMetadataService(svc, metadataRepo)
	generateService := service.NewGenerateService(svc, conf, render.NewPongoEngine(), templateService, templateRepo)
	databaseService := service.NewDatabaseService(svc, repository.NewSnapshotRepository(repo))

	h := handler.NewHandler(logger)
	srv := NewHTTPServer(router.RouterDeps{
		Logger:          logger,
		Config:          conf,
		TemplateHandler: handler.NewTemplateHandler(h, templateService),
		VersionHandler:  handler.NewVersionHandler(h, templateService),
		MetadataHandler: handler.NewMetadataHandler(h, metadataService),
		GenerateHandler: handler.NewGenerateHandler(h, generateService),
		DatabaseHandler: handler.NewDatabaseHandler(h, databaseService),
	})

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func TestAPIRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	e := httpexpect.Default(t, ts.URL)

	// Register the metadata values the template will reference.
	e.POST("/api/host-types").WithJSON(map[string]string{"name": "leaf", "description": "access"}).
		Expect().Status(http.StatusOK).JSON().Object().HasValue("success", true)
	e.POST("/api/port-types").WithJSON(map[string]string{"name": "10G"}).
		Expect().Status(http.StatusOK)
	e.POST("/api/switch-os-types").WithJSON(map[string]string{"name": "nxos"}).
		Expect().Status(http.StatusOK)

	e.GET("/api/host-types").Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("list").Array().ContainsOnly("leaf")

	// Create a template; its first version becomes active.
	created := e.POST("/api/templates").WithJSON(map[string]string{
		"name":             "leaf-base",
		"host_type":        "leaf",
		"port_type":        "10G",
		"switch_os":        "nxos",
		"template_content": "hostname {{ switch_name }}",
	}).Expect().Status(http.StatusOK).JSON().Object()
	created.HasValue("success", true)
	id := created.Value("data").Object().Value("id").Number().Gt(0).Raw()

	path := fmt.Sprintf("/api/templates/%d", int64(id))
	e.GET(path).Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Object().
		HasValue("active_version", 1).
		HasValue("template_content", "hostname {{ switch_name }}")

	// Add a second version and activate it.
	e.POST(path + "/versions").WithJSON(map[string]string{
		"version_name":     "v2",
		"template_content": "HOST {{ switch_name }}",
	}).Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Object().HasValue("version", 2)
	e.POST(path + "/active-version/2").Expect().Status(http.StatusOK)

	// Unknown versions are a 404, not a crash.
	e.POST(path + "/active-version/9").Expect().Status(http.StatusNotFound)

	// Preview rendering keeps its flat contract.
	e.POST("/render").WithJSON(map[string]string{
		"template":  "vlan {{ vlan }}",
		"variables": `{"vlan": 100}`,
	}).Expect().Status(http.StatusOK).
		JSON().Object().HasValue("success", true).HasValue("output", "vlan 100")

	// Generation uses the active version's content.
	generated := e.POST("/api/generate-configs").WithJSON(map[string]interface{}{
		"excel_data": []map[string]string{
			{"switch_name": "sw-1", "eth_port": "1", "template": "leaf-base"},
		},
	}).Expect().Status(http.StatusOK).JSON().Object()
	generated.HasValue("success", true).HasValue("success_row_count", 1)
	generated.Value("configs").Array().Value(0).Object().HasValue("config", "HOST sw-1")

	// Snapshot export is a JSON attachment.
	e.GET("/api/export-database").Expect().Status(http.StatusOK).
		Header("Content-Disposition").Contains("confgen-snapshot-")

	// Legacy delete contract for metadata values.
	e.POST("/api/port-types/delete").WithJSON(map[string]string{"name": "10G"}).
		Expect().Status(http.StatusOK)
	e.GET("/api/port-types").Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("list").Array().IsEmpty()
}

func TestAPIValidation(t *testing.T) {
	ts := newTestServer(t)
	e := httpexpect.Default(t, ts.URL)

	e.POST("/api/templates").WithJSON(map[string]string{"name": "incomplete"}).
		Expect().Status(http.StatusBadRequest)

	e.GET("/api/templates/99999").Expect().Status(http.StatusNotFound).
		JSON().Object().HasValue("success", false)

	e.POST("/render").WithJSON(map[string]string{
		"template": "{% broken",
	}).Expect().Status(http.StatusBadRequest).
		JSON().Object().HasValue("success", false)
}
