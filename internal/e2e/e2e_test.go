package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/kgsoft/estoque/internal/categoria"
	"github.com/kgsoft/estoque/internal/config"
	"github.com/kgsoft/estoque/internal/fornecedor"
	"github.com/kgsoft/estoque/internal/grupoacesso"
	"github.com/kgsoft/estoque/internal/material"
	"github.com/kgsoft/estoque/internal/migration"
	"github.com/kgsoft/estoque/internal/movimento"
	"github.com/kgsoft/estoque/internal/observability"
	"github.com/kgsoft/estoque/internal/provision"
	"github.com/kgsoft/estoque/internal/server"
	"github.com/kgsoft/estoque/internal/tenancy"
	"github.com/kgsoft/estoque/internal/usuario"
	"github.com/kgsoft/estoque/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type testEnv struct {
	app     *fx.App
	httpSrv *httptest.Server
	db      *gorm.DB
}

var env *testEnv

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	setDefaultEnv()

	var err error
	env, err = startEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start test environment:", err)
		os.Exit(1)
	}

	code := m.Run()
	env.shutdown()
	os.Exit(code)
}

func setDefaultEnv() {
	os.Setenv("DATABASE_TYPE", "sqlite")
	os.Setenv("DATABASE_NAME", "file::memory:?cache=shared")
	os.Setenv("DATABASE_MAX_OPEN_CONN", "1")
	os.Setenv("DATABASE_MAX_IDLE_CONN", "1")
	os.Setenv("LOG_LEVEL", "error")
	os.Setenv("ENVIRONMENT", "test")
}

func startEnv() (*testEnv, error) {
	var (
		engine *gin.Engine
		gdb    *gorm.DB
	)

	app := fx.New(
		fx.NopLogger,
		config.Module,
		observability.Module,
		fx.Provide(func() (*snowflake.Node, error) { return snowflake.NewNode(9) }),
		db.Module,
		tenancy.Module,
		migration.Module,
		categoria.Module,
		fornecedor.Module,
		grupoacesso.Module,
		material.Module,
		movimento.Module,
		usuario.Module,
		provision.Module,
		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(*server.Server) {}),
		fx.Populate(&engine, &gdb),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, err
	}

	return &testEnv{
		app:     app,
		httpSrv: httptest.NewServer(engine),
		db:      gdb,
	}, nil
}

func (e *testEnv) shutdown() {
	if e == nil {
		return
	}
	if e.httpSrv != nil {
		e.httpSrv.Close()
	}
	if e.app != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.app.Stop(ctx)
	}
}

func request(t *testing.T, method, path, tenantID string, body any) (int, map[string]any) {
	t.Helper()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, env.httpSrv.URL+path, payload)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tenantID != "" {
		req.Header.Set("X-Tenant-ID", tenantID)
	}

	resp, err := env.httpSrv.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp.StatusCode, decoded
}

func dataID(t *testing.T, body map[string]any) string {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	id, ok := data["id"].(string)
	if !ok || id == "" {
		t.Fatalf("response data has no id: %v", data)
	}
	return id
}

func TestFullTenantLifecycle(t *testing.T) {
	status, body := request(t, http.MethodPost, "/api/tenants", "", map[string]any{
		"nome":        "Oficina Três Irmãos",
		"admin_nome":  "Ana Costa",
		"admin_email": "ana@tresirmaos.com.br",
		"admin_senha": "senha-do-almoxarifado",
	})
	if status != http.StatusCreated {
		t.Fatalf("provision: status %d body %v", status, body)
	}
	tenantID := "oficina-tres-irmaos"
	if got := body["data"].(map[string]any)["external_id"]; got != tenantID {
		t.Fatalf("external_id = %v", got)
	}

	// the seeded admin can sign in under the new tenant
	status, _ = request(t, http.MethodPost, "/api/login", tenantID, map[string]any{
		"email": "ana@tresirmaos.com.br", "senha": "senha-do-almoxarifado",
	})
	if status != http.StatusOK {
		t.Fatalf("login: status %d", status)
	}

	status, body = request(t, http.MethodPost, "/api/categorias", tenantID, map[string]any{
		"nome": "Lubrificantes",
	})
	if status != http.StatusCreated {
		t.Fatalf("create categoria: status %d body %v", status, body)
	}
	categoriaID := dataID(t, body)

	status, body = request(t, http.MethodPost, "/api/materiais", tenantID, map[string]any{
		"nome": "Oleo 15W40", "categoria_id": categoriaID, "unidade": "L", "estoque_minimo": 10,
	})
	if status != http.StatusCreated {
		t.Fatalf("create material: status %d body %v", status, body)
	}
	materialID := dataID(t, body)

	status, body = request(t, http.MethodPost, "/api/movimentos", tenantID, map[string]any{
		"material_id": materialID, "tipo": "ENTRADA", "quantidade": 200,
	})
	if status != http.StatusCreated {
		t.Fatalf("registrar movimento: status %d body %v", status, body)
	}

	q := url.Values{}
	q.Set("draw", "1")
	q.Set("length", "10")
	q.Set("search[value]", "óleo")
	status, body = request(t, http.MethodGet, "/api/materiais/datatable?"+q.Encode(), tenantID, nil)
	if status != http.StatusOK {
		t.Fatalf("datatable: status %d body %v", status, body)
	}
	if filtered := body["recordsFiltered"].(float64); filtered != 1 {
		t.Fatalf("recordsFiltered = %v", filtered)
	}
}

func TestUnknownTenantIsNotRoutable(t *testing.T) {
	status, _ := request(t, http.MethodGet, "/api/categorias/datatable", "inexistente", nil)
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestHealthEndpoint(t *testing.T) {
	status, body := request(t, http.MethodGet, "/health", "", nil)
	if status != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("health: status %d body %v", status, body)
	}
}
