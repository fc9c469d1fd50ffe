package mockserver

import (
	"context"
	"errors"
	"net/http"
	"net"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eoapi/internal/models"
	"eoapi/internal/tests/mocks"
)

func newTestServer(apis ...models.ApiData) *Server {
	repo := &mocks.ApiDataRepositoryMock{
		FindByUUIDFunc: func(ctx context.Context, id string) (*models.ApiData, error) {
			if id == "broken" {
				return nil, errors.New("database is locked")
			}
			for i := range apis {
				if apis[i].UUID == id {
					return &apis[i], nil
				}
			}
			return nil, nil
		},
	}
	return New(0, repo, nil)
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestStatus(t *testing.T) {
	rec := serve(newTestServer(), http.MethodGet, "/system/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"statusCode":200}`, rec.Body.String())
}

func TestMock_JSONResponse(t *testing.T) {
	s := newTestServer(models.ApiData{UUID: "a-1", MockStatus: http.StatusCreated, MockResponse: `{"id":1}`})

	rec := serve(s, http.MethodPost, "/mock/pets?mockID=a-1")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestMock_PlainTextResponse(t *testing.T) {
	s := newTestServer(models.ApiData{UUID: "a-2", MockResponse: "pong"})

	rec := serve(s, http.MethodGet, "/mock/ping?mockID=a-2")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMock_Errors(t *testing.T) {
	s := newTestServer()

	cases := map[string]int{
		"/mock/pets":               http.StatusBadRequest,
		"/mock/pets?mockID=nope":   http.StatusNotFound,
		"/mock/pets?mockID=broken": http.StatusInternalServerError,
	}
	for target, code := range cases {
		rec := serve(s, http.MethodGet, target)
		assert.Equal(t, code, rec.Code, target)
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:13928/mock/", New(13928, nil, nil).URL())
}

func TestStartShutdown(t *testing.T) {
	s := newTestServer()
	s.port = freePort(t)

	require.NoError(t, s.Start())
	require.NoError(t, s.Start())

	resp, err := http.Get(strings.TrimSuffix(s.URL(), "/mock/") + "/system/status")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Shutdown(context.Background()))
	require.NoError(t, s.Shutdown(context.Background()))
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
