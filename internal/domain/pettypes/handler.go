package pettypes

import (
	"encoding/json"
	"errors"
	"net/http"

	"petclinic-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pet-types", func(tr chi.Router) {
		tr.Get("/", listPetTypesHandler(svc))
		tr.Post("/", createPetTypeHandler(svc))
		tr.Get("/{petTypeID}", getPetTypeHandler(svc))
		tr.Put("/{petTypeID}", updatePetTypeHandler(svc))
		tr.Delete("/{petTypeID}", deletePetTypeHandler(svc))
	})
}

type petTypeRequest struct {
	Name string `json:"name"`
}

type petTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func listPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petTypeResponse, 0, len(items))
		for _, pt := range items {
			out = append(out, petTypeResponse{ID: pt.ID, Name: pt.Name})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		pt, err := svc.Create(r.Context(), PetType{Name: req.Name})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, petTypeResponse{ID: pt.ID, Name: pt.Name})
	}
}

func getPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "petTypeID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		pt, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, petTypeResponse{ID: pt.ID, Name: pt.Name})
	}
}

func updatePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "petTypeID"))
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

		var req petTypeRequest
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

		httpx.WriteJSON(w, http.StatusOK, petTypeResponse{ID: updated.ID, Name: updated.Name})
	}
}

func deletePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "petTypeID"))
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
