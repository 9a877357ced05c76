package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agbrain/pkg/logger"
	"agbrain/pkg/testutil"
)

type api struct {
	t *testing.T
	e *echo.Echo
}

func newAPI(t *testing.T) *api {
	return &api{t: t, e: Setup(testutil.NewDB(t), logger.Nop())}
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

// create posts body and returns the new record's id.
func (a *api) create(path string, body any) string {
	a.t.Helper()
	rec := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(a.t, out.ID)
	return out.ID
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func farmBody(producerID, state string, total, arable, veg float64) map[string]any {
	return map[string]any{
		"name": "Fazenda", "city": "Ribeirão Preto", "state": state,
		"totalArea": total, "arableArea": arable, "vegetationArea": veg,
		"producerId": producerID,
	}
}

func TestProducerCRUD(t *testing.T) {
	a := newAPI(t)

	id := a.create("/producers", map[string]any{"name": "Ana", "document": "123.456.789-01"})

	rec := a.do(http.MethodGet, "/producers/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[map[string]any](t, rec)
	assert.Equal(t, "12345678901", p["document"])
	assert.Contains(t, p, "createdAt")

	rec = a.do(http.MethodPatch, "/producers/"+id, map[string]any{"name": "Ana Maria"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ana Maria", decode[map[string]any](t, rec)["name"])

	rec = a.do(http.MethodGet, "/producers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/producers/"+id, nil).Code)

	rec = a.do(http.MethodGet, "/producers/"+id, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "Producer not found", body["message"])
	assert.EqualValues(t, 404, body["statusCode"])
}

func TestProducerValidation(t *testing.T) {
	a := newAPI(t)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/producers", map[string]any{"name": "A", "document": "123"}).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/producers", map[string]any{"document": "12345678901"}).Code)

	a.create("/producers", map[string]any{"name": "A", "document": "12345678901"})
	assert.Equal(t, http.StatusConflict, a.do(http.MethodPost, "/producers", map[string]any{"name": "B", "document": "123.456.789-01"}).Code)
}

func TestMalformedJSON(t *testing.T) {
	a := newAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/farms", bytes.NewBufferString("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFarmAreaRule(t *testing.T) {
	a := newAPI(t)
	rec := a.do(http.MethodPost, "/farms", farmBody("p", "SP", 100, 80, 30))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, "/farms", farmBody("p", "SP", 0, 0, 0))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	a.create("/farms", farmBody("p", "SP", 100, 80, 20))
}

func TestDashboardRoutes(t *testing.T) {
	a := newAPI(t)
	for _, st := range []string{"SP", "MG", "MG", "MG", "RJ"} {
		a.create("/farms", farmBody("p", st, 100, 50, 25))
	}
	for _, n := range []string{"Milho", "Milho", "Soja"} {
		a.create("/crops", map[string]any{"name": n, "harvestId": "h"})
	}

	rec := a.do(http.MethodGet, "/farms/count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 5, decode[map[string]any](t, rec)["count"])

	rec = a.do(http.MethodGet, "/farms/areas", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 500, decode[map[string]any](t, rec)["totalArea"])

	rec = a.do(http.MethodGet, "/farms/areas/by-type", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	byType := decode[map[string]any](t, rec)
	assert.EqualValues(t, 250, byType["arableArea"])
	assert.EqualValues(t, 125, byType["vegetationArea"])

	rec = a.do(http.MethodGet, "/farms/count/by-state", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []map[string]any{
		{"state": "SP", "count": 1.0},
		{"state": "MG", "count": 3.0},
		{"state": "RJ", "count": 1.0},
	}, decode[[]map[string]any](t, rec))

	rec = a.do(http.MethodGet, "/crops/count/by-name", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []map[string]any{
		{"crop": "Milho", "count": 2.0},
		{"crop": "Soja", "count": 1.0},
	}, decode[[]map[string]any](t, rec))

	rec = a.do(http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sum := decode[map[string]any](t, rec)
	assert.EqualValues(t, 500, sum["totalArea"])
	assert.EqualValues(t, 5, sum["farms"].(map[string]any)["count"])

	rec = a.do(http.MethodGet, "/dashboard/export.xlsx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "spreadsheetml")
	assert.Equal(t, "PK", rec.Body.String()[:2])
}

func TestDeletingParentsDoesNotCascade(t *testing.T) {
	a := newAPI(t)
	producer := a.create("/producers", map[string]any{"name": "Ana", "document": "12345678901"})
	farm := a.create("/farms", farmBody(producer, "GO", 100, 50, 50))
	harvest := a.create("/harvests", map[string]any{"year": 2024, "farmId": farm})
	crop1 := a.create("/crops", map[string]any{"name": "Soja", "harvestId": harvest})
	crop2 := a.create("/crops", map[string]any{"name": "Milho", "harvestId": harvest})

	require.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/producers/"+producer, nil).Code)

	for _, path := range []string{"/farms/" + farm, "/harvests/" + harvest, "/crops/" + crop1, "/crops/" + crop2} {
		assert.Equal(t, http.StatusOK, a.do(http.MethodGet, path, nil).Code, path)
	}
	rec := a.do(http.MethodGet, "/farms/"+farm, nil)
	assert.Equal(t, producer, decode[map[string]any](t, rec)["producerId"])
}

func TestUnknownIDsAnswer404(t *testing.T) {
	a := newAPI(t)
	for _, kind := range []string{"producers", "farms", "harvests", "crops"} {
		assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/"+kind+"/nope", nil).Code, kind)
		assert.Equal(t, http.StatusNotFound, a.do(http.MethodPatch, "/"+kind+"/nope", map[string]any{}).Code, kind)
		assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, "/"+kind+"/nope", nil).Code, kind)
	}
}

func TestHealth(t *testing.T) {
	a := newAPI(t)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/health", nil).Code)
}
