// quantiri/routes/auth.go
package routes

import (
	"encoding/json"
	"net/http"
	"quantiri/quantiri/controllers"
	"quantiri/quantiri/types"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		var req types.SignUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, types.NewValidationError(types.FieldError{Field: "body", Message: "Invalid JSON"}))
			return
		}
		if err := ctrl.SignUp(r.Context(), req); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	})

	r.Post("/signin", func(w http.ResponseWriter, r *http.Request) {
		var req types.SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, types.NewValidationError(types.FieldError{Field: "body", Message: "Invalid JSON"}))
			return
		}
		token, err := ctrl.SignIn(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	})

	r.Get("/verify", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		email := r.URL.Query().Get("email")
		if err := ctrl.Verify(r.Context(), token, email); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Email verified"})
	})

	return r
}
