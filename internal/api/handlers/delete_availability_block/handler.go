package delete_availability_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/RB-ReservationService/internal/api/handlers"
	"github.com/dmtrv/RB-ReservationService/internal/service/schedule"
)

const (
	msgInvalidBlockID = "некорректный ID блокировки"
	msgBlockNotFound  = "блокировка не найдена"
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

// Handle DELETE /api/v1/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем blockId из URL
	vars := mux.Vars(r)
	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	// Удаляем блокировку
	if err := h.service.DeleteBlock(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /blocks/{id} - Failed to delete block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block deleted successfully: block_id=%d", blockID)
	w.WriteHeader(http.StatusNoContent)
}
