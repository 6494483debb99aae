package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petclinic-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/visits", func(vr chi.Router) {
		vr.Get("/", listVisitsHandler(svc))
		vr.Post("/", createVisitHandler(svc))
		vr.Get("/{visitID}", getVisitHandler(svc))
		vr.Put("/{visitID}", updateVisitHandler(svc))
		vr.Delete("/{visitID}", deleteVisitHandler(svc))
	})
}

type visitRequest struct {
	PetID       int64    `json:"petId"`
	VetID       *int64   `json:"vetId"`
	VisitDate   string   `json:"visitDate"` // YYYY-MM-DD
	Description string   `json:"description"`
	Cost        *float64 `json:"cost"`
}

type visitResponse struct {
	ID          int64    `json:"id"`
	PetID       int64    `json:"petId"`
	VetID       *int64   `json:"vetId,omitempty"`
	VisitDate   string   `json:"visitDate"`
	Description string   `json:"description,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
}

func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVisitResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := time.Parse(dateLayout, req.VisitDate)
		if err != nil {
			http.Error(w, "visitDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		v, err := svc.Create(r.Context(), Visit{
			PetID:       req.PetID,
			VetID:       req.VetID,
			VisitDate:   d,
			Description: req.Description,
			Cost:        req.Cost,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toVisitResponse(v))
	}
}

func getVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "visitID"))
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

		httpx.WriteJSON(w, http.StatusOK, toVisitResponse(v))
	}
}

// updateVisitHandler hace el merge parcial heredado del sistema: del request
// se copian solo petId, visitDate y description; vetId y cost se conservan
// tal como están en el registro guardado.
func updateVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "visitID"))
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

		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := time.Parse(dateLayout, req.VisitDate)
		if err != nil {
			http.Error(w, "visitDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		existing.PetID = req.PetID
		existing.VisitDate = d
		existing.Description = req.Description

		updated, err := svc.Update(r.Context(), existing)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.NotFound(w)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVisitResponse(updated))
	}
}

func deleteVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.ParseID(chi.URLParam(r, "visitID"))
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

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:          v.ID,
		PetID:       v.PetID,
		VetID:       v.VetID,
		VisitDate:   v.VisitDate.Format(dateLayout),
		Description: v.Description,
		Cost:        v.Cost,
	}
}
