package create_availability_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/service/schedule"
)

const (
	msgInvalidRestaurantID  = "некорректный ID ресторана"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени"
	msgRestaurantNotFound   = "ресторан не найден"
	msgTableNotFound        = "столик не найден"
	msgTableWrongRestaurant = "столик не принадлежит указанному ресторану"
	msgInvalidInput         = "некорректные входные данные"
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

// Handle POST /api/v1/restaurants/{restaurantId}/blocks
// Создает блокировку доступности ресторана или отдельного столика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/blocks - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Декодируем body
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(restaurantID)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/blocks - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Создаем блокировку
	block, err := h.service.CreateBlock(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/blocks - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, schedule.ErrTableNotFound):
			h.logger.Warn("POST /restaurants/{id}/blocks - Table not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, schedule.ErrTableWrongRestaurant):
			h.logger.Warn("POST /restaurants/{id}/blocks - Table belongs to another restaurant: restaurant_id=%d",
				restaurantID)
			handlers.RespondBadRequest(w, msgTableWrongRestaurant)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/blocks - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /restaurants/{id}/blocks - Failed to create block: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/blocks - Block created successfully: restaurant_id=%d, block_id=%d",
		restaurantID, block.ID)
	handlers.RespondJSON(w, http.StatusCreated, block)
}
