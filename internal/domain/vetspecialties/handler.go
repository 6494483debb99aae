package vetspecialties

import (
	"encoding/json"
	"errors"
	"net/http"

	"petclinic-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vet-specialties", func(vr chi.Router) {
		vr.Get("/", listVetSpecialtiesHandler(svc))
		vr.Post("/", createVetSpecialtyHandler(svc))
		vr.Get("/vet/{vetID}", listByVetHandler(svc))
		vr.Get("/specialty/{specialtyID}", listBySpecialtyHandler(svc))
		vr.Get("/{vetID}/{specialtyID}", getVetSpecialtyHandler(svc))
		vr.Put("/{vetID}/{specialtyID}", replaceVetSpecialtyHandler(svc))
		vr.Delete("/{vetID}/{specialtyID}", deleteVetSpecialtyHandler(svc))
	})
}

type vetSpecialtyRequest struct {
	VetID       int64 `json:"vetId"`
	SpecialtyID int64 `json:"specialtyId"`
}

type vetSpecialtyResponse struct {
	VetID       int64 `json:"vetId"`
	SpecialtyID int64 `json:"specialtyId"`
}

func keyFromPath(r *http.Request) (Key, error) {
	vetID, err := httpx.ParseID(chi.URLParam(r, "vetID"))
	if err != nil {
		return Key{}, err
	}
	specialtyID, err := httpx.ParseID(chi.URLParam(r, "specialtyID"))
	if err != nil {
		return Key{}, err
	}
	return Key{VetID: vetID, SpecialtyID: specialtyID}, nil
}

func listVetSpecialtiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVetSpecialtyResponses(items))
	}
}

func createVetSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vetSpecialtyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		vs, err := svc.Create(r.Context(), VetSpecialty{VetID: req.VetID, SpecialtyID: req.SpecialtyID})
		if err != nil {
			if errors.Is(err, ErrDuplicate) {
				http.Error(w, "vet-specialty already exists", http.StatusConflict)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toVetSpecialtyResponse(vs))
	}
}

func getVetSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := keyFromPath(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		vs, err := svc.GetByID(r.Context(), key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVetSpecialtyResponse(vs))
	}
}

func listByVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vetID, err := httpx.ParseID(chi.URLParam(r, "vetID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		items, err := svc.ListByVetID(r.Context(), vetID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVetSpecialtyResponses(items))
	}
}

func listBySpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specialtyID, err := httpx.ParseID(chi.URLParam(r, "specialtyID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		items, err := svc.ListBySpecialtyID(r.Context(), specialtyID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVetSpecialtyResponses(items))
	}
}

// replaceVetSpecialtyHandler: el PUT elimina el par del path y crea el par del
// body, que puede re-apuntar la asociación a otro vet/specialty.
func replaceVetSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := keyFromPath(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var req vetSpecialtyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		vs, err := svc.Replace(r.Context(), key, VetSpecialty{VetID: req.VetID, SpecialtyID: req.SpecialtyID})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.NotFound(w)
				return
			}
			var repErr *ReplaceError
			if errors.As(err, &repErr) {
				// el par original ya se eliminó; el error del service
				// conserva la clave perdida
				http.Error(w, "association replace failed", http.StatusInternalServerError)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVetSpecialtyResponse(vs))
	}
}

func deleteVetSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := keyFromPath(r)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), key); err != nil {
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

func toVetSpecialtyResponse(vs VetSpecialty) vetSpecialtyResponse {
	return vetSpecialtyResponse{VetID: vs.VetID, SpecialtyID: vs.SpecialtyID}
}

func toVetSpecialtyResponses(items []VetSpecialty) []vetSpecialtyResponse {
	out := make([]vetSpecialtyResponse, 0, len(items))
	for _, vs := range items {
		out = append(out, toVetSpecialtyResponse(vs))
	}
	return out
}
