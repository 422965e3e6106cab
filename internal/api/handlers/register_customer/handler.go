package register_customer

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
	msgEmailTaken         = "email уже зарегистрирован"
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

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req models.RegisterCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Регистрируем гостя
	customer, err := h.service.RegisterCustomer(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrEmailTaken):
			h.logger.Warn("POST /customers - Email already registered")
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /customers - Failed to register customer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Customer registered successfully: customer_id=%d", customer.ID)
	handlers.RespondJSON(w, http.StatusCreated, customer)
}
