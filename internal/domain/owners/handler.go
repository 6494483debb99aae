package owners

import (
	"encoding/json"
	"errors"
	"net/http"

	"petclinic-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type ownerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

type ownerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), Owner{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
			City:      req.City,
			Telephone: req.Telephone,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "ownerID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// updateOwnerHandler carga el registro existente, copia encima los campos
// mutables del request y recién ahí llama a Update (load-merge-save).
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "ownerID"))
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

		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), mergeOwner(existing, req))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toOwnerResponse(updated))
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "ownerID"))
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

// mergeOwner copia todos los campos mutables del request sobre el registro
// cargado; el ID se conserva del existente.
func mergeOwner(existing Owner, req ownerRequest) Owner {
	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Address = req.Address
	existing.City = req.City
	existing.Telephone = req.Telephone
	return existing
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
}
