package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Potable/internal/auth"
	"Potable/internal/repo"
	"Potable/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopRepo satisfies repo.Repository for routes that never touch storage.
type nopRepo struct{}

func (nopRepo) CreateUser(context.Context, string, string, string) (int, error) { return 1, nil }
func (nopRepo) GetByLogin(context.Context, string) (int, string, error) {
	return 0, "", repo.ErrNotFound
}
func (nopRepo) CreateDesign(_ context.Context, d repo.Design) (repo.Design, error) { return d, nil }
func (nopRepo) ListDesigns(context.Context, int) ([]repo.DesignSummary, error) {
	return []repo.DesignSummary{}, nil
}
func (nopRepo) GetDesign(context.Context, int, uuid.UUID) (repo.Design, error) {
	return repo.Design{}, repo.ErrNotFound
}
func (nopRepo) DeleteDesign(context.Context, int, uuid.UUID) error { return repo.ErrNotFound }

var key = []byte("router-test-key")

func newTestHandler(t *testing.T) http.Handler {
	return CORS(NewRouter(Deps{
		Repo:           nopRepo{},
		TokenKey:       key,
		Logger:         testutil.NewTestLogger(t),
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}))
}

func withSession(t *testing.T, req *http.Request) *http.Request {
	t.Helper()
	token, err := (&auth.Authenv{JWTKey: key}).NewToken(7, "ana", time.Now())
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	return req
}

func TestToolsRequireSession(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/tools/selection/catalog", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodGet, "/api/user/tools/selection/catalog", "", http.StatusOK},
		{http.MethodPost, "/api/user/tools/selection/calc", `{"origin":"well","user_profile":"municipal","flow_lps":20}`, http.StatusOK},
		{http.MethodPost, "/api/user/tools/sizing/calc", `{"stage":"fla","flow_lps":5}`, http.StatusOK},
		{http.MethodPost, "/api/user/tools/cascade/calc", `{"raw":{"turbidity":50},"stages":["fgdi"]}`, http.StatusOK},
		{http.MethodPost, "/api/user/tools/compliance/ct", `{"ph":7.5,"temperature_c":20}`, http.StatusOK},
		{http.MethodPost, "/api/user/tools/recommend/ct", `{"ph":7.5,"temperature_c":20,"dose_mg_l":1}`, http.StatusOK},
		{http.MethodGet, "/api/user/projects", "", http.StatusOK},
		{http.MethodGet, "/api/user/projects/" + uuid.NewString(), "", http.StatusNotFound},
		{http.MethodGet, "/api/user/tools/sizing/calc", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := withSession(t, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/login", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
