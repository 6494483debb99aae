package specialties

import (
	"encoding/json"
	"errors"
	"net/http"

	"petclinic-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/specialties", func(sr chi.Router) {
		sr.Get("/", listSpecialtiesHandler(svc))
		sr.Post("/", createSpecialtyHandler(svc))
		sr.Get("/{specialtyID}", getSpecialtyHandler(svc))
		sr.Put("/{specialtyID}", updateSpecialtyHandler(svc))
		sr.Delete("/{specialtyID}", deleteSpecialtyHandler(svc))
	})
}

type specialtyRequest struct {
	Name string `json:"name"`
}

type specialtyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func listSpecialtiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]specialtyResponse, 0, len(items))
		for _, sp := range items {
			out = append(out, specialtyResponse{ID: sp.ID, Name: sp.Name})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req specialtyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sp, err := svc.Create(r.Context(), Specialty{Name: req.Name})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, specialtyResponse{ID: sp.ID, Name: sp.Name})
	}
}

func getSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "specialtyID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		sp, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, specialtyResponse{ID: sp.ID, Name: sp.Name})
	}
}

func updateSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "specialtyID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		existing, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var req specialtyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		existing.Name = req.Name
		updated, err := svc.Update(r.Context(), existing)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, specialtyResponse{ID: updated.ID, Name: updated.Name})
	}
}

func deleteSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "specialtyID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.NoContent(w)
	}
}
