package get_customer_reservations

import (
	"errors"
	"net/http"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/api/middleware"
	"github.com/dmtrv/RB-ReservationService/internal/service/reservations"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidStatus = "некорректный статус брони"
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

// Handle GET /api/v1/reservations
// История броней текущего гостя, опционально фильтруется по ?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем customerID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// Получаем брони гостя
	result, err := h.service.GetByCustomer(r.Context(), customerID, statusPtr)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid status: customer_id=%d, status=%s", customerID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /reservations - Failed to get reservations: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: customer_id=%d, count=%d",
		customerID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
