package routes

import (
	"database/sql"

	"github.com/qusai-Kagalwala/repo-vista/internal/config"

	"github.com/qusai-Kagalwala/repo-vista/internal/cards"

	"net/http"

	"github.com/qusai-Kagalwala/repo-vista/internal/middleware"

	"github.com/qusai-Kagalwala/repo-vista/internal/docs"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gorilla/mux"
)

//	@title			RepoVista API
//	@version		1.0
//	@description	Renders repository preview cards with an editable language distribution bar.
//	@termsOfService	https://example.com/terms/

//	@contact.name	API Support
//	@contact.url	https://example.com/support
//	@contact.email	support@repovista.dev

//	@license.name	MIT License
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/

// @schemes	http https
func SetUpRoutes(db *sql.DB, cfg *config.Config) http.Handler {

	allowedOrigins := []string{
		"*",
	}

	// Create a new Gorilla Mux router
	router := mux.NewRouter()

	//Use cors middleware
	router.Use(middleware.CorsMiddleware(allowedOrigins))

	// Dynamically set Swagger host and schemes from config
	if cfg.Swagger.Host != "" {
		docs.SwaggerInfo.Host = cfg.Swagger.Host
	}
	if len(cfg.Swagger.Schemes) > 0 {
		docs.SwaggerInfo.Schemes = cfg.Swagger.Schemes
	}

	if cfg.AppEnv != "production" {
		// Serve Swagger UI only in non-production environments
		router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

		// Optional: Redirect /swagger to /swagger/index.html
		router.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
		})
	}

	//Handle health
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is up and running"))
	}).Methods("GET")

	// Register card feature routes
	// keep feature based routing in internal/cards
	cards.RegisterRoutes(router, db, cfg)

	return router
}
