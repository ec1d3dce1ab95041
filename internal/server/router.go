// Package server assembles the HTTP routes of the treatment-plant API.
package server

import (
	"log/slog"
	"net/http"

	"Potable/internal/auth"
	"Potable/internal/calc/batch"
	"Potable/internal/calc/cascade"
	"Potable/internal/calc/compliance"
	"Potable/internal/calc/design"
	"Potable/internal/calc/importer"
	"Potable/internal/calc/memo"
	"Potable/internal/calc/recommend"
	"Potable/internal/calc/report"
	"Potable/internal/calc/selection"
	"Potable/internal/calc/sizing"
	"Potable/internal/project"
	"Potable/internal/repo"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

type Deps struct {
	Repo           repo.Repository
	TokenKey       []byte
	Logger         *slog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
	StaticDir      string
	// Insecure is set when serving without TLS.
	Insecure bool
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewRouter wires every endpoint. Tools and projects sit behind the session
// middleware; the whole /api tree is rate limited per client IP.
func NewRouter(d Deps) *mux.Router {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	router := mux.NewRouter()

	authEnv := auth.NewAuthenv(d.TokenKey, d.Repo, logger)
	authEnv.Insecure = d.Insecure
	limiter := auth.NewIPRateLimiter(rate.Limit(d.RateLimitRPS), d.RateLimitBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/logout", authEnv.LogoutHandler).Methods("POST")

	secure := api.PathPrefix("/user").Subrouter()
	secure.Use(authEnv.AuthMiddleware)

	selectionH := &selection.Handler{}
	sizingH := &sizing.Handler{}
	cascadeH := &cascade.Handler{}
	complianceH := &compliance.Handler{}
	memoH := &memo.Handler{}
	designH := &design.Handler{}
	recommendH := &recommend.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := report.NewHandler(logger)
	projectH := project.NewHandler(d.Repo, logger)

	secure.HandleFunc("/tools/selection/calc", selectionH.Calc).Methods("POST")
	secure.HandleFunc("/tools/selection/catalog", selectionH.Catalog).Methods("GET")
	secure.HandleFunc("/tools/sizing/calc", sizingH.Calc).Methods("POST")
	secure.HandleFunc("/tools/cascade/calc", cascadeH.Calc).Methods("POST")
	secure.HandleFunc("/tools/compliance/calc", complianceH.Calc).Methods("POST")
	secure.HandleFunc("/tools/compliance/ct", complianceH.CT).Methods("POST")
	secure.HandleFunc("/tools/memo/calc", memoH.Calc).Methods("POST")
	secure.HandleFunc("/tools/design/calc", designH.Calc).Methods("POST")
	secure.HandleFunc("/tools/recommend/ct", recommendH.CT).Methods("POST")
	secure.HandleFunc("/tools/batch/sizing", batchH.Sizing).Methods("POST")
	secure.HandleFunc("/tools/import/quality", importH.Quality).Methods("POST")
	secure.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secure.HandleFunc("/projects", projectH.List).Methods("GET")
	secure.HandleFunc("/projects", projectH.Save).Methods("POST")
	secure.HandleFunc("/projects/{id}", projectH.Get).Methods("GET")
	secure.HandleFunc("/projects/{id}", projectH.Delete).Methods("DELETE")

	if d.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(d.StaticDir)))
	}
	return router
}
