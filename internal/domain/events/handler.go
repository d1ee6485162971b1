package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"animal-registry/internal/domain/animals"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service) {
	r.Get("/event-options", eventOptionsHandler(svc))

	r.Get("/animals/{animalID}/events", listEventsHandler(svc, animalsSvc))
	r.Get("/animals/{animalID}/events/{eventID}", getEventHandler(svc, animalsSvc))
}

type typeResponse struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// EventResponse representa un evento del animal devuelto por la API.
// Se exporta porque drafts responde con el mismo formato al crear.
type EventResponse struct {
	ID       int64        `json:"id"`
	Animal   int64        `json:"animal"`
	Type     typeResponse `json:"type"`
	Category string       `json:"category"`
	Expenses float64      `json:"expenses"`
	Comments string       `json:"comments"`
	DateTime Timestamp    `json:"dateTime" swaggertype:"integer"`
}

// optionsResponse son las enumeraciones que necesita el formulario y los filtros.
type optionsResponse struct {
	Types      []string   `json:"types"`
	Categories []string   `json:"categories"`
	FilterAll  string     `json:"filter_all"`
	SortModes  []SortMode `json:"sort_modes"`
}

// eventOptionsHandler godoc
// @Summary Opciones de eventos
// @Description Tipos y categorías permitidos, el filtro centinela y los modos de orden.
// @Tags events
// @Produce json
// @Success 200 {object} optionsResponse
// @Router /event-options [get]
func eventOptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := svc.Catalog()
		writeJSON(w, http.StatusOK, optionsResponse{
			Types:      c.Types,
			Categories: c.Categories,
			FilterAll:  FilterAll,
			SortModes:  []SortMode{SortDescending, SortAscending},
		})
	}
}

// listEventsHandler godoc
// @Summary Listar eventos de un animal
// @Description Lista los eventos del animal filtrados por categoría (ALL = todas) y ordenados por fecha. Sólo el dueño.
// @Tags events
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param category query string false "Categoría a mostrar; ALL o vacío muestra todas"
// @Param sort query string false "desc (default, más reciente primero) o asc"
// @Success 200 {array} EventResponse
// @Failure 400 {string} string "invalid category / invalid sort"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/events [get]
func listEventsHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		q, err := parseListQuery(r, svc.Catalog())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), a.ID, q)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]EventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, ToResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getEventHandler godoc
// @Summary Obtener evento
// @Tags events
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param eventID path int true "ID del evento"
// @Success 200 {object} EventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /animals/{animalID}/events/{eventID} [get]
func getEventHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := animals.FromRequest(w, r, animalsSvc)
		if !ok {
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		// El evento tiene que pertenecer al animal del path.
		e, err := svc.GetByID(r.Context(), id)
		if err != nil || e.Animal != a.ID {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(e))
	}
}

func parseListQuery(r *http.Request, c Catalog) (ListQuery, error) {
	q := ListQuery{Category: FilterAll, Sort: SortDescending}

	if v := strings.TrimSpace(r.URL.Query().Get("category")); v != "" && v != FilterAll {
		if !c.HasCategory(v) {
			return ListQuery{}, errors.New("invalid category")
		}
		q.Category = v
	}

	mode, ok := ParseSortMode(r.URL.Query().Get("sort"))
	if !ok {
		return ListQuery{}, errors.New("sort must be asc or desc")
	}
	q.Sort = mode

	return q, nil
}

func ToResponse(e Event) EventResponse {
	return EventResponse{
		ID:     e.ID,
		Animal: e.Animal,
		Type: typeResponse{
			Index: e.Type.Index,
			Label: e.Type.Label,
		},
		Category: e.Category,
		Expenses: e.Expenses,
		Comments: e.Comments,
		DateTime: e.DateTime,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
