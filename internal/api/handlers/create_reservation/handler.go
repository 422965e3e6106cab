package create_reservation

import (
	"errors"
	"net/http"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/api/middleware"
	createReservation "github.com/dmtrv/RB-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем customerID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: customer_id=%d, restaurant_id=%d, error=%v",
				customerID, req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Бизнес-отказ: бронь не создана, возвращаем все причины разом
	if !result.Success {
		h.logger.Warn("POST /reservations - Reservation rejected: customer_id=%d, restaurant_id=%d, reasons=%d",
			customerID, req.RestaurantID, len(result.Errors))
		handlers.RespondJSON(w, http.StatusConflict, RejectedResponse{Success: false, Errors: result.Errors})
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, customer_id=%d, restaurant_id=%d",
		result.Reservation.ID, customerID, req.RestaurantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result.Reservation))
}
