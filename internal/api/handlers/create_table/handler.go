package create_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/service/directory"
	"github.com/dmtrv/RB-ReservationService/internal/service/directory/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgRestaurantNotFound  = "ресторан не найден"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем restaurantId из URL
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	// Декодируем body
	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RestaurantID = restaurantID

	// Добавляем столик
	table, err := h.service.CreateTable(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/tables - Invalid input: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /restaurants/{id}/tables - Failed to create table: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/tables - Table created successfully: restaurant_id=%d, table_id=%d",
		restaurantID, table.ID)
	handlers.RespondJSON(w, http.StatusCreated, table)
}
