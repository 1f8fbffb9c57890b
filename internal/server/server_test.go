package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	return w
}

func createdID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ID)
	return resp.Data.ID
}

func TestCategoriaCRUD(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/categorias", map[string]any{"nome": "Ferramentas"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := createdID(t, w)

	w = doJSON(t, srv, http.MethodGet, "/api/categorias/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodPut, "/api/categorias/"+id, map[string]any{"nome": "Ferramentas elétricas"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodDelete, "/api/categorias/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/categorias/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriaValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/categorias", map[string]any{"nome": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/categorias", map[string]any{"nome": "OK", "situacao": "LIGADO"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoriaDatatable(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, nome := range []string{"Ferramentas", "Eletrica", "Hidraulica", "Pintura"} {
		w := doJSON(t, srv, http.MethodPost, "/api/categorias", map[string]any{"nome": nome})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// accented search term is folded before matching
	q := url.Values{}
	q.Set("draw", "7")
	q.Set("start", "0")
	q.Set("length", "10")
	q.Set("search[value]", "Elétrica")
	q.Set("order[0][column]", "1")
	q.Set("order[0][dir]", "asc")

	w := doJSON(t, srv, http.MethodGet, "/api/categorias/datatable?"+q.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Draw            string `json:"draw"`
		RecordsTotal    int64  `json:"recordsTotal"`
		RecordsFiltered int64  `json:"recordsFiltered"`
		Data            []struct {
			Nome string `json:"nome"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "7", resp.Draw)
	assert.Equal(t, int64(4), resp.RecordsTotal)
	require.Equal(t, int64(1), resp.RecordsFiltered)
	assert.Equal(t, "Eletrica", resp.Data[0].Nome)
}

func TestDatatableRejectsBadParameters(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/categorias/datatable?order[0][dir]=sideways", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/categorias/datatable?start=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// sort index beyond the column set is refused, not defaulted
	w = doJSON(t, srv, http.MethodGet, "/api/categorias/datatable?order[0][column]=42", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMovimentoFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/categorias", map[string]any{"nome": "Insumos"})
	require.Equal(t, http.StatusCreated, w.Code)
	categoriaID := createdID(t, w)

	w = doJSON(t, srv, http.MethodPost, "/api/materiais", map[string]any{
		"nome": "Cimento CP-II", "categoria_id": categoriaID, "unidade": "KG",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	materialID := createdID(t, w)

	w = doJSON(t, srv, http.MethodPost, "/api/movimentos", map[string]any{
		"material_id": materialID, "tipo": "ENTRADA", "quantidade": 50,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// draining more than the balance is a validation failure
	w = doJSON(t, srv, http.MethodPost, "/api/movimentos", map[string]any{
		"material_id": materialID, "tipo": "SAIDA", "quantidade": 51,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/materiais/%s/movimentos", materialID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/materiais/"+materialID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mat struct {
		Data struct {
			Saldo float64 `json:"saldo"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mat))
	assert.Equal(t, 50.0, mat.Data.Saldo)
}

func TestProvisionTenantEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	body := map[string]any{
		"nome":        "Construtora Horizonte",
		"admin_nome":  "João Pereira",
		"admin_email": "joao@horizonte.com.br",
		"admin_senha": "senha-bem-forte",
	}
	w := doJSON(t, srv, http.MethodPost, "/api/tenants", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, srv, http.MethodPost, "/api/tenants", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/tenants", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/usuarios", map[string]any{
		"nome": "Maria", "email": "maria@empresa.com", "senha": "senha-forte-123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, srv, http.MethodPost, "/api/login", map[string]any{
		"email": "maria@empresa.com", "senha": "senha-forte-123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/login", map[string]any{
		"email": "maria@empresa.com", "senha": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnknownTenantHeaderIsRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categorias/datatable", nil)
	req.Header.Set("X-Tenant-ID", "fantasma")
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
