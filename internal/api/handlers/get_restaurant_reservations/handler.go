package get_restaurant_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/service/reservations"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidParams       = "некорректные параметры запроса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/reservations
// Query params: tableId, status, from, to, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Получаем опциональные query параметры
	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		restaurantID,
		query.Get("tableId"),
		query.Get("status"),
		query.Get("from"),
		query.Get("to"),
		query.Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем брони ресторана
	result, err := h.service.GetByRestaurant(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid filter: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /restaurants/{id}/reservations - Failed to get reservations: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/reservations - Reservations retrieved successfully: restaurant_id=%d, count=%d",
		restaurantID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
