package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"petclinic-api/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Owners_CRUD_WithMergeUpdate(t *testing.T) {
	ts := newTestServer(t)

	// create
	st, body := doReq(t, ts.URL, "POST", "/owners", map[string]any{
		"firstName": "Luis",
		"lastName":  "Torres",
		"address":   "Calle Lima 789",
		"city":      "Cusco",
		"telephone": "923456789",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}
	id := extractID(t, body)

	// get
	st, body = doReq(t, ts.URL, "GET", ownerPath(id), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get owner, got %d", st)
	}

	// update: cambian firstName y city, el resto viaja igual en el request
	st, body = doReq(t, ts.URL, "PUT", ownerPath(id), map[string]any{
		"firstName": "Luis Actualizado",
		"lastName":  "Torres",
		"address":   "Calle Lima 789",
		"city":      "Lima",
		"telephone": "923456789",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update owner, got %d body=%s", st, string(body))
	}

	var updated struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		City      string `json:"city"`
	}
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("unmarshal updated owner: %v", err)
	}
	if updated.FirstName != "Luis Actualizado" || updated.City != "Lima" {
		t.Fatalf("expected merged update, got %+v", updated)
	}
	if updated.LastName != "Torres" {
		t.Fatalf("expected lastName intact after merge, got %q", updated.LastName)
	}

	// delete: 204 sin body, luego 404 con body vacío
	st, body = doReq(t, ts.URL, "DELETE", ownerPath(id), nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete owner, got %d", st)
	}
	st, body = doReq(t, ts.URL, "GET", ownerPath(id), nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
	if len(body) != 0 {
		t.Fatalf("expected empty 404 body, got %q", string(body))
	}
}

func TestHTTP_Owners_NotFoundPaths(t *testing.T) {
	ts := newTestServer(t)

	if st, _ := doReq(t, ts.URL, "GET", "/owners/99999", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 get, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "PUT", "/owners/99999", map[string]any{"firstName": "X"}); st != http.StatusNotFound {
		t.Fatalf("expected 404 update, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/owners/99999", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 delete, got %d", st)
	}
}

func TestHTTP_PetTypes_And_Specialties_CRUD(t *testing.T) {
	ts := newTestServer(t)

	for _, res := range []string{"/pet-types", "/specialties"} {
		st, body := doReq(t, ts.URL, "POST", res, map[string]any{"name": "Cardiología"})
		if st != http.StatusCreated {
			t.Fatalf("%s: expected 201, got %d body=%s", res, st, string(body))
		}
		id := extractID(t, body)

		st, body = doReq(t, ts.URL, "PUT", res+"/"+itoa(id), map[string]any{"name": "Dermatología"})
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200 update, got %d body=%s", res, st, string(body))
		}
		var got struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &got)
		if got.Name != "Dermatología" {
			t.Fatalf("%s: expected updated name, got %q", res, got.Name)
		}

		st, _ = doReq(t, ts.URL, "DELETE", res+"/"+itoa(id), nil)
		if st != http.StatusNoContent {
			t.Fatalf("%s: expected 204 delete, got %d", res, st)
		}
		st, _ = doReq(t, ts.URL, "GET", res+"/"+itoa(id), nil)
		if st != http.StatusNotFound {
			t.Fatalf("%s: expected 404 after delete, got %d", res, st)
		}
	}
}

func TestHTTP_VetSpecialties_Lifecycle(t *testing.T) {
	ts := newTestServer(t)

	// vet y specialties de respaldo (la asociación no valida referencias,
	// pero el flujo real los crea primero)
	st, body := doReq(t, ts.URL, "POST", "/vets", map[string]any{
		"firstName": "Carlos",
		"lastName":  "Méndez",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create vet, got %d", st)
	}
	vetID := extractID(t, body)

	st, body = doReq(t, ts.URL, "POST", "/specialties", map[string]any{"name": "Cardiología"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create specialty, got %d", st)
	}
	sp1 := extractID(t, body)

	st, body = doReq(t, ts.URL, "POST", "/specialties", map[string]any{"name": "Cirugía"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create specialty, got %d", st)
	}
	sp2 := extractID(t, body)

	// create de la asociación
	st, body = doReq(t, ts.URL, "POST", "/vet-specialties", map[string]any{
		"vetId":       vetID,
		"specialtyId": sp1,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create vet-specialty, got %d body=%s", st, string(body))
	}

	// par duplicado se rechaza
	st, _ = doReq(t, ts.URL, "POST", "/vet-specialties", map[string]any{
		"vetId":       vetID,
		"specialtyId": sp1,
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate pair, got %d", st)
	}

	pairPath := "/vet-specialties/" + itoa(vetID) + "/" + itoa(sp1)

	st, _ = doReq(t, ts.URL, "GET", pairPath, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get pair, got %d", st)
	}

	// PUT reemplaza: borra el par del path y crea el del body
	st, body = doReq(t, ts.URL, "PUT", pairPath, map[string]any{
		"vetId":       vetID,
		"specialtyId": sp2,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 replace, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", pairPath, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for replaced pair, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/vet-specialties/"+itoa(vetID)+"/"+itoa(sp2), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 for new pair, got %d", st)
	}

	// listar por lado
	st, body = doReq(t, ts.URL, "GET", "/vet-specialties/vet/"+itoa(vetID), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list by vet, got %d", st)
	}
	var byVet []map[string]any
	_ = json.Unmarshal(body, &byVet)
	if len(byVet) != 1 {
		t.Fatalf("expected 1 association for vet, got %d", len(byVet))
	}

	// delete y 404 posterior
	st, _ = doReq(t, ts.URL, "DELETE", "/vet-specialties/"+itoa(vetID)+"/"+itoa(sp2), nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete pair, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "DELETE", "/vet-specialties/"+itoa(vetID)+"/"+itoa(sp2), nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 deleting missing pair, got %d", st)
	}
}

func TestHTTP_Visits_Update_PreservesVetAndCost(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/visits", map[string]any{
		"petId":       7,
		"vetId":       4,
		"visitDate":   "2026-02-14",
		"description": "control anual",
		"cost":        150.50,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
	}
	id := extractID(t, body)

	// el PUT de visitas solo copia petId, visitDate y description;
	// vetId y cost no viajan y deben conservarse
	st, body = doReq(t, ts.URL, "PUT", "/visits/"+itoa(id), map[string]any{
		"petId":       7,
		"visitDate":   "2026-02-20",
		"description": "control reprogramado",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update visit, got %d body=%s", st, string(body))
	}

	var got struct {
		VetID       *int64   `json:"vetId"`
		VisitDate   string   `json:"visitDate"`
		Description string   `json:"description"`
		Cost        *float64 `json:"cost"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal visit: %v", err)
	}
	if got.VisitDate != "2026-02-20" || got.Description != "control reprogramado" {
		t.Fatalf("expected merged fields, got %+v", got)
	}
	if got.VetID == nil || *got.VetID != 4 {
		t.Fatalf("expected vetId preserved, got %v", got.VetID)
	}
	if got.Cost == nil || *got.Cost != 150.50 {
		t.Fatalf("expected cost preserved, got %v", got.Cost)
	}
}

func TestHTTP_Visits_CreateWithoutDate_IsBadRequest(t *testing.T) {
	ts := newTestServer(t)

	st, _ := doReq(t, ts.URL, "POST", "/visits", map[string]any{"petId": 1})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without visitDate, got %d", st)
	}
}

func ownerPath(id int64) string {
	return "/owners/" + itoa(id)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func extractID(t *testing.T, body []byte) int64 {
	t.Helper()

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("extract id: %v body=%s", err, string(body))
	}
	if resp.ID == 0 {
		t.Fatalf("extract id: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
