package update_availability_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/service/schedule"
)

const (
	msgInvalidBlockID     = "некорректный ID блокировки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени"
	msgBlockNotFound      = "блокировка не найдена"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle PUT /api/v1/blocks/{blockId}
// Изменяет период и причину блокировки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем blockId из URL
	vars := mux.Vars(r)
	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	// Декодируем body
	var req UpdateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /blocks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(blockID)
	if err != nil {
		h.logger.Warn("PUT /blocks/{id} - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Изменяем блокировку
	block, err := h.service.UpdateBlock(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("PUT /blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /blocks/{id} - Invalid input: block_id=%d, error=%v", blockID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /blocks/{id} - Failed to update block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /blocks/{id} - Block updated successfully: block_id=%d", blockID)
	handlers.RespondJSON(w, http.StatusOK, block)
}
