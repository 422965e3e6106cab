package get_available_tables

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/service/assignment"
	"github.com/dmtrv/RB-ReservationService/internal/service/assignment/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidPartySize    = "некорректный размер компании"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC3339"
	msgInvalidInput        = "некорректные входные данные"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/available-tables?startTime=...&partySize=2&best=true
// С параметром best=true возвращает только наилучший столик
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Извлекаем параметры запроса
	query := r.URL.Query()

	partySize, err := strconv.Atoi(query.Get("partySize"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	startTime, err := time.Parse(time.RFC3339, query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	req := &models.FindBestTableRequest{
		RestaurantID: restaurantID,
		StartTime:    startTime,
		PartySize:    partySize,
	}

	var result interface{}
	if query.Get("best") == "true" {
		result, err = h.service.FindBestTable(r.Context(), req)
	} else {
		result, err = h.service.GetAvailableTables(r.Context(), req)
	}

	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/available-tables - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, assignment.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /restaurants/{id}/available-tables - Failed to get tables: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/available-tables - Tables retrieved: restaurant_id=%d, party_size=%d",
		restaurantID, partySize)
	handlers.RespondJSON(w, http.StatusOK, result)
}
