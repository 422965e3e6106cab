package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	checkAvailability "github.com/dmtrv/RB-ReservationService/internal/usecase/check_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidTableID      = "некорректный ID столика"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC3339"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/availability?tableId=5&startTime=2025-10-15T19:00:00Z
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Извлекаем параметры запроса
	query := r.URL.Query()

	tableID, err := strconv.ParseInt(query.Get("tableId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	startTime, err := time.Parse(time.RFC3339, query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Вызываем use case (конец окна выводится из политики бронирования)
	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		RestaurantID: restaurantID,
		TableID:      tableID,
		StartTime:    startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /restaurants/{id}/availability - Failed to check availability: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/availability - Availability checked: restaurant_id=%d, table_id=%d, available=%t",
		restaurantID, tableID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
