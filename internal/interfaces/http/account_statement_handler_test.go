package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protecfuego/gestion-api/internal/application/statement"
	"github.com/protecfuego/gestion-api/internal/infrastructure/memory"
	apphttp "github.com/protecfuego/gestion-api/internal/interfaces/http"
)

type stubPDF struct{}

func (stubPDF) GenerateStatementPDF(context.Context, statement.StatementDocument) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

func newStatementApp() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONDecoder:  apphttp.DecodeJSON,
		ErrorHandler: apphttp.ErrorHandler,
	})
	uc := statement.NewUseCase(memory.NewAccountStatementRepository(), stubPDF{}, nil)
	apphttp.Router(app, apphttp.RouterDeps{
		StatementUC: uc,
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		require.NoError(t, dec.Decode(&out), string(raw))
	}
	return resp, out
}

func createViaAPI(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := call(t, app, http.MethodPost, "/api/estados-cuenta", "admin",
		`{"numero":"EC-100","clienteId":"cli-1","clienteNombre":"Hotel Central",
		  "periodo":{"desde":"2024-01-01","hasta":"2024-01-31"},"saldoAnterior":1000}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	return body["id"].(string)
}

func TestStatementAPI_FlujoCompleto(t *testing.T) {
	app := newStatementApp()
	id := createViaAPI(t, app)

	resp, body := call(t, app, http.MethodPut, "/api/estados-cuenta/"+id, "admin", `{
		"saldoAnterior": "1000.00",
		"version": 1,
		"movimientos": [
			{"id":1,"fecha":"2024-01-05","concepto":"Servicio","debe":500,"haber":0,"tipo":"factura","numero":"FC-7"},
			{"id":2,"fecha":"2024-01-20","concepto":"Pago","monto":-200},
			{"id":3,"fecha":"2024-01-25","concepto":"Visita","monto":"0"}
		]
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, json.Number("1300"), body["saldoActual"])
	assert.Equal(t, json.Number("500"), body["totalCargos"])
	assert.Equal(t, json.Number("200"), body["totalAbonos"])
	assert.Equal(t, json.Number("2"), body["version"])

	movs := body["movimientos"].([]any)
	first := movs[0].(map[string]any)
	assert.Equal(t, "FACTURA FC-7 - Servicio", first["concepto"])
	assert.Equal(t, "cargo", first["tipoMovimiento"])
	assert.NotContains(t, first, "debe")
	assert.Equal(t, "neutro", movs[2].(map[string]any)["tipoMovimiento"])

	resp, body = call(t, app, http.MethodGet, "/api/estados-cuenta/"+id, "cliente", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, json.Number("1300"), body["saldoActual"])
}

func TestStatementAPI_MontoInvalido_422ConDetalles(t *testing.T) {
	app := newStatementApp()
	id := createViaAPI(t, app)

	resp, body := call(t, app, http.MethodPut, "/api/estados-cuenta/"+id, "admin",
		`{"version":1,"movimientos":[{"id":1,"monto":"10"},{"id":2,"monto":"abc"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	detalles := body["detalles"].([]any)
	require.Len(t, detalles, 1)
	assert.Equal(t, json.Number("2"), detalles[0].(map[string]any)["fila"])
}

func TestStatementAPI_ConflictoDeVersion(t *testing.T) {
	app := newStatementApp()
	id := createViaAPI(t, app)

	resp, _ := call(t, app, http.MethodPut, "/api/estados-cuenta/"+id, "admin", `{"version":1,"movimientos":[]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := call(t, app, http.MethodPut, "/api/estados-cuenta/"+id, "admin", `{"version":1,"movimientos":[]}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "VERSION_CONFLICT", body["code"])
}

func TestStatementAPI_GuardarSinMovimientos_400(t *testing.T) {
	app := newStatementApp()
	id := createViaAPI(t, app)

	resp, body := call(t, app, http.MethodPut, "/api/estados-cuenta/"+id, "admin",
		`{"saldoAnterior":1000,"version":1,"movimientos":[{"id":1,"concepto":"Servicio","monto":1e3}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, json.Number("2000"), body["saldoActual"], "1e3 se lee como mil")

	// Omitir la clave no debe vaciar el libro ya guardado.
	resp, _ = call(t, app, http.MethodPut, "/api/estados-cuenta/"+id, "admin", `{"version":2,"observaciones":"nota"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = call(t, app, http.MethodGet, "/api/estados-cuenta/"+id, "admin", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["movimientos"], 1)
	assert.Equal(t, json.Number("2000"), body["saldoActual"])
}

func TestStatementAPI_Permisos(t *testing.T) {
	app := newStatementApp()
	id := createViaAPI(t, app)

	resp, _ := call(t, app, http.MethodPost, "/api/estados-cuenta", "tecnico", `{"numero":"X","clienteId":"c"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, app, http.MethodDelete, "/api/estados-cuenta/"+id, "cliente", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/estados-cuenta/"+id, "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := call(t, app, http.MethodGet, "/api/estados-cuenta", "tecnico", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, json.Number("1"), body["page"].(map[string]any)["total"])
}

func TestStatementAPI_Movimientos(t *testing.T) {
	app := newStatementApp()
	id := createViaAPI(t, app)
	base := "/api/estados-cuenta/" + id + "/movimientos"

	resp, body := call(t, app, http.MethodPost, base, "admin", `{"fecha":"2024-01-10","concepto":"Recarga","monto":"250.50"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Equal(t, json.Number("1250.5"), body["saldoActual"])

	resp, body = call(t, app, http.MethodPut, base+"/1", "admin", `{"concepto":"Recarga anual","monto":300}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, json.Number("1300"), body["saldoActual"])

	resp, _ = call(t, app, http.MethodPut, base+"/abc", "admin", `{"monto":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, app, http.MethodDelete, base+"/1?version=1", "admin", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = call(t, app, http.MethodDelete, base+"/1", "admin", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["movimientos"])
	assert.Equal(t, json.Number("1000"), body["saldoActual"])
}

func TestStatementAPI_CalcularYPDF(t *testing.T) {
	app := newStatementApp()
	id := createViaAPI(t, app)

	resp, body := call(t, app, http.MethodPost, "/api/estados-cuenta/calcular", "tecnico",
		`{"saldoAnterior":0.1,"movimientos":[{"monto":0.2},{"monto":"abc"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, json.Number("0.3"), body["saldoActual"])
	assert.Equal(t, false, body["puedeGuardar"])

	resp, _ = call(t, app, http.MethodPost, "/api/estados-cuenta/calcular", "tecnico", `{"movimientos":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/estados-cuenta/"+id+"/pdf", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	pdfResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer pdfResp.Body.Close()
	assert.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	assert.Contains(t, pdfResp.Header.Get("Content-Disposition"), "estado_cuenta_EC-100.pdf")

	resp, _ = call(t, app, http.MethodGet, "/api/estados-cuenta/no-existe/pdf", "admin", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
