package create_restaurant

import (
	"errors"
	"net/http"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/service/directory"
	"github.com/dmtrv/RB-ReservationService/internal/service/directory/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle POST /api/v1/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req models.CreateRestaurantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Регистрируем ресторан
	restaurant, err := h.service.CreateRestaurant(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /restaurants - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /restaurants - Failed to create restaurant: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants - Restaurant created successfully: restaurant_id=%d", restaurant.ID)
	handlers.RespondJSON(w, http.StatusCreated, restaurant)
}
