// quantiri/routes/datasets.go
package routes

import (
	"encoding/json"
	"net/http"
	"quantiri/quantiri/config"
	"quantiri/quantiri/controllers"
	"quantiri/quantiri/middlewares"
	"quantiri/quantiri/types"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func DatasetRoutes(ctrl *controllers.DatasetController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	// POST / : CSV ingest
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.CSVIngestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, types.NewValidationError(types.FieldError{Field: "body", Message: "Invalid JSON"}))
			return
		}
		userID := r.Context().Value(middlewares.UserIDKey).(uuid.UUID)
		dataset, err := ctrl.Ingest(r.Context(), userID, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataset)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middlewares.UserIDKey).(uuid.UUID)
		datasets, err := ctrl.List(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, datasets)
	})

	r.Get("/{dataset_id}", func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middlewares.UserIDKey).(uuid.UUID)
		id, err := uuid.Parse(chi.URLParam(r, "dataset_id"))
		if err != nil {
			writeError(w, types.ErrDatasetNotFound)
			return
		}
		dataset, err := ctrl.Get(r.Context(), userID, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dataset)
	})

	return r
}
