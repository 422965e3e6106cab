package get_restaurant_schedule

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
	msgRestaurantNotFound  = "ресторан не найден"
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

// Handle GET /api/v1/restaurants/{restaurantId}/schedule
// Недельное расписание работы ресторана
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/schedule - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Получаем расписание
	weekSchedule, err := h.service.GetWeekSchedule(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/schedule - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/schedule - Failed to get schedule: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/schedule - Schedule retrieved successfully: restaurant_id=%d, days=%d",
		restaurantID, len(weekSchedule.Days))
	handlers.RespondJSON(w, http.StatusOK, weekSchedule)
}
