package vets

import (
	"encoding/json"
	"errors"
	"net/http"

	"petclinic-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vets", func(vr chi.Router) {
		vr.Get("/", listVetsHandler(svc))
		vr.Post("/", createVetHandler(svc))
		vr.Get("/{vetID}", getVetHandler(svc))
		vr.Put("/{vetID}", updateVetHandler(svc))
		vr.Delete("/{vetID}", deleteVetHandler(svc))
	})
}

type vetRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type vetResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vetResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVetResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Create(r.Context(), Vet{FirstName: req.FirstName, LastName: req.LastName})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toVetResponse(v))
	}
}

func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "vetID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		v, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func updateVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "vetID"))
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

		var req vetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		existing.FirstName = req.FirstName
		existing.LastName = req.LastName
		updated, err := svc.Update(r.Context(), existing)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVetResponse(updated))
	}
}

func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "vetID"))
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

func toVetResponse(v Vet) vetResponse {
	return vetResponse{ID: v.ID, FirstName: v.FirstName, LastName: v.LastName}
}
