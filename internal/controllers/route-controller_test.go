package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"route-system/internal/dto"
	"route-system/internal/entities"
	apperrors "route-system/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetRoutesIncludesStaleWarning(t *testing.T) {
	e := newEchoForTest()
	svc := &fakeRouteService{
		routes: []dto.RouteDTO{{ID: 1, Funcionario: "Maria"}},
		stale:  true,
	}
	ctrl := NewRouteController(svc, &fakeBoardService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetRoutes(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["status"])
	assert.Contains(t, body["message"], "snapshot")
}

func TestCreateRouteReturns201(t *testing.T) {
	e := newEchoForTest()
	svc := &fakeRouteService{createID: 42}
	ctrl := NewRouteController(svc, &fakeBoardService{}, zap.NewNop())

	payload := `{"submission_id":"sub-1","colaborador":"Maria","funcionario":"Maria","endereco":"Rua das Flores","numero":"100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/routes", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateRoute(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastCreate)
	assert.Equal(t, "sub-1", svc.lastCreate.SubmissionID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["body"].(map[string]interface{})["id"])
}

func TestCreateRouteValidatesRequiredFields(t *testing.T) {
	e := newEchoForTest()
	ctrl := NewRouteController(&fakeRouteService{}, &fakeBoardService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/routes", strings.NewReader(`{"colaborador":"Maria"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateRoute(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRouteRejectsBadID(t *testing.T) {
	e := newEchoForTest()
	ctrl := NewRouteController(&fakeRouteService{}, &fakeBoardService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/routes/abc", strings.NewReader(`{"status":"executado"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, ctrl.UpdateRoute(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRouteNotFound(t *testing.T) {
	e := newEchoForTest()
	svc := &fakeRouteService{err: apperrors.ErrNotFound}
	ctrl := NewRouteController(svc, &fakeBoardService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/routes/99", strings.NewReader(`{"status":"executado"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, ctrl.UpdateRoute(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRouteConflict(t *testing.T) {
	e := newEchoForTest()
	svc := &fakeRouteService{err: apperrors.ErrConflict}
	ctrl := NewRouteController(svc, &fakeBoardService{}, zap.NewNop())

	payload := `{"submission_id":"dup","colaborador":"Maria","funcionario":"Maria","endereco":"Rua","numero":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/routes", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateRoute(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBoardForwardsQueryFilters(t *testing.T) {
	e := newEchoForTest()
	board := &fakeBoardService{board: &dto.BoardDTO{}}
	ctrl := NewRouteController(&fakeRouteService{}, board, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/routes/board?status=pendente&funcionario=Maria&busca=flores", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetBoard(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entities.RouteFilter{Status: "pendente", Funcionario: "Maria", Busca: "flores"}, board.lastFilter)
}

func TestGetBoardByFuncionarioRequiresName(t *testing.T) {
	e := newEchoForTest()
	ctrl := NewRouteController(&fakeRouteService{}, &fakeBoardService{board: &dto.BoardDTO{}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/routes/board/by-assignee/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("")

	require.NoError(t, ctrl.GetBoardByFuncionario(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearRoutesByFuncionario(t *testing.T) {
	e := newEchoForTest()
	svc := &fakeRouteService{routes: []dto.RouteDTO{{ID: 1}, {ID: 2}}}
	ctrl := NewRouteController(svc, &fakeBoardService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/api/routes/clear-by-assignee/Maria", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Maria")

	require.NoError(t, ctrl.ClearRoutesByFuncionario(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Maria", svc.cleared)
}

