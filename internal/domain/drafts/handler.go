package drafts

import (
	"encoding/json"
	"errors"
	"net/http"

	"animal-registry/internal/domain/animals"
	"animal-registry/internal/domain/eventform"
	"animal-registry/internal/domain/events"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service) {
	// Alta en un paso: los cinco campos juntos, misma validación que el diálogo.
	r.Post("/animals/{animalID}/events", createEventHandler(svc, animalsSvc))

	// Diálogo de creación paso a paso.
	r.Post("/animals/{animalID}/event-drafts", openDraftHandler(svc, animalsSvc))
	r.Get("/animals/{animalID}/event-drafts/{draftID}", getDraftHandler(svc, animalsSvc))
	r.Put("/animals/{animalID}/event-drafts/{draftID}/fields/{field}", changeFieldHandler(svc, animalsSvc))
	r.Post("/animals/{animalID}/event-drafts/{draftID}/fields/{field}/blur", blurFieldHandler(svc, animalsSvc))
	r.Post("/animals/{animalID}/event-drafts/{draftID}/submit", submitDraftHandler(svc, animalsSvc))
	r.Post("/animals/{animalID}/event-drafts/{draftID}/cancel", cancelDraftHandler(svc, animalsSvc))
}

// createEventRequest son los cinco campos del formulario, como texto.
type createEventRequest struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Expenses string `json:"expenses"`
	Comments string `json:"comments"`
	Date     string `json:"date"` // YYYY-MM-DD, YYYY-MM-DDTHH:MM o RFC3339
}

type changeFieldRequest struct {
	Value string `json:"value"`
}

// draftResponse es el estado del diálogo abierto.
type draftResponse struct {
	ID       string          `json:"id"`
	AnimalID int64           `json:"animal_id"`
	Open     bool            `json:"open"`
	Draft    eventform.Draft `json:"draft"`
}

// validationResponse se devuelve con 422 cuando faltan campos.
type validationResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Missing []eventform.Field `json:"missing"`
	Draft   eventform.Draft   `json:"draft"`
}

type closedResponse struct {
	Open bool `json:"open"`
}

// createEventHandler godoc
// @Summary Crear evento
// @Description Crea un evento para el animal con los cinco campos del formulario. Si falta alguno responde 422 con los campos marcados. Sólo el dueño.
// @Tags events
// @Accept json
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param payload body createEventRequest true "Campos del formulario"
// @Success 201 {object} events.EventResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal not found"
// @Failure 422 {object} validationResponse
// @Router /animals/{animalID}/events [post]
func createEventHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d := eventform.New()
		d = eventform.Change(d, eventform.FieldType, req.Type)
		d = eventform.Change(d, eventform.FieldCategory, req.Category)
		d = eventform.Change(d, eventform.FieldExpenses, req.Expenses)
		d = eventform.Change(d, eventform.FieldComments, req.Comments)
		d = eventform.Change(d, eventform.FieldDate, req.Date)

		out, err := svc.SubmitDraft(r.Context(), d, a.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSubmit(w, out)
	}
}

// openDraftHandler godoc
// @Summary Abrir diálogo de creación
// @Description Abre un borrador vacío para crear un evento del animal.
// @Tags drafts
// @Produce json
// @Param animalID path int true "ID del animal"
// @Success 201 {object} draftResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/event-drafts [post]
func openDraftHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		sess, err := svc.Open(r.Context(), a.ID, a.OwnerUserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toDraftResponse(sess))
	}
}

// getDraftHandler godoc
// @Summary Ver borrador
// @Tags drafts
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param draftID path string true "ID del borrador"
// @Success 200 {object} draftResponse
// @Failure 404 {string} string "draft not found"
// @Router /animals/{animalID}/event-drafts/{draftID} [get]
func getDraftHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		sess, err := svc.Get(r.Context(), chi.URLParam(r, "draftID"), a.ID, a.OwnerUserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(sess))
	}
}

// changeFieldHandler godoc
// @Summary Cambiar un campo
// @Description Guarda el valor y limpia la marca de inválido del campo, aunque el valor quede vacío.
// @Tags drafts
// @Accept json
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param draftID path string true "ID del borrador"
// @Param field path string true "type, category, expenses, comments o date"
// @Param payload body changeFieldRequest true "Valor nuevo"
// @Success 200 {object} draftResponse
// @Failure 400 {string} string "unknown field / invalid option"
// @Failure 404 {string} string "draft not found"
// @Router /animals/{animalID}/event-drafts/{draftID}/fields/{field} [put]
func changeFieldHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		field, err := eventform.ParseField(chi.URLParam(r, "field"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var req changeFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.Change(r.Context(), chi.URLParam(r, "draftID"), a.ID, a.OwnerUserID, field, req.Value)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(sess))
	}
}

// blurFieldHandler godoc
// @Summary Salir de un campo
// @Description Marca el campo como inválido si está vacío (la fecha no se valida al salir).
// @Tags drafts
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param draftID path string true "ID del borrador"
// @Param field path string true "type, category, expenses, comments o date"
// @Success 200 {object} draftResponse
// @Failure 400 {string} string "unknown field"
// @Failure 404 {string} string "draft not found"
// @Router /animals/{animalID}/event-drafts/{draftID}/fields/{field}/blur [post]
func blurFieldHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		field, err := eventform.ParseField(chi.URLParam(r, "field"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sess, err := svc.Blur(r.Context(), chi.URLParam(r, "draftID"), a.ID, a.OwnerUserID, field)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDraftResponse(sess))
	}
}

// submitDraftHandler godoc
// @Summary Enviar borrador
// @Description Si no falta ningún campo crea el evento y cierra el diálogo; si falta alguno responde 422 y marca los vacíos.
// @Tags drafts
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param draftID path string true "ID del borrador"
// @Success 201 {object} events.EventResponse
// @Failure 404 {string} string "draft not found"
// @Failure 422 {object} validationResponse
// @Router /animals/{animalID}/event-drafts/{draftID}/submit [post]
func submitDraftHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		out, err := svc.Submit(r.Context(), chi.URLParam(r, "draftID"), a.ID, a.OwnerUserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSubmit(w, out)
	}
}

// cancelDraftHandler godoc
// @Summary Cancelar borrador
// @Description Descarta el borrador sin importar su estado y cierra el diálogo.
// @Tags drafts
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param draftID path string true "ID del borrador"
// @Success 200 {object} closedResponse
// @Failure 404 {string} string "draft not found"
// @Router /animals/{animalID}/event-drafts/{draftID}/cancel [post]
func cancelDraftHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		if err := svc.Cancel(r.Context(), chi.URLParam(r, "draftID"), a.ID, a.OwnerUserID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, closedResponse{Open: false})
	}
}

func writeSubmit(w http.ResponseWriter, out SubmitOutcome) {
	if out.Result.Outcome == eventform.OutcomeValidationFailed {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Error:   "incomplete submission",
			Message: out.Draft.Message,
			Missing: out.Result.Missing,
			Draft:   out.Draft,
		})
		return
	}
	writeJSON(w, http.StatusCreated, events.ToResponse(out.Event))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "draft not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidOption), errors.Is(err, events.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toDraftResponse(s Session) draftResponse {
	return draftResponse{
		ID:       s.ID,
		AnimalID: s.AnimalID,
		Open:     true,
		Draft:    s.Draft,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
