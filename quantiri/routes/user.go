// quantiri/routes/user.go
package routes

import (
	"net/http"
	"quantiri/quantiri/config"
	"quantiri/quantiri/controllers"
	"quantiri/quantiri/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func UserRoutes(ctrl *controllers.UserController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middlewares.UserIDKey).(uuid.UUID)
		profile, err := ctrl.GetProfile(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	})

	return r
}
