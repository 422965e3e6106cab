package set_operating_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/service/schedule"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgRestaurantNotFound  = "ресторан не найден"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/restaurants/{restaurantId}/hours
// Полностью заменяет рабочие часы одного дня недели
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/hours - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Декодируем body
	var req SetHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Заменяем рабочие часы дня
	hours, err := h.service.SetHours(r.Context(), req.ToServiceRequest(restaurantID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrRestaurantNotFound):
			h.logger.Warn("PUT /restaurants/{id}/hours - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /restaurants/{id}/hours - Invalid input: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /restaurants/{id}/hours - Failed to set hours: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/hours - Hours set successfully: restaurant_id=%d, day=%d",
		restaurantID, req.DayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, hours)
}
