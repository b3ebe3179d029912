package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"chatvault/internal/logger"
	"chatvault/internal/service"
	"chatvault/internal/utils"
	"chatvault/models"
)

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conversationID, err := conversationIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id")
		http.Error(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	messages, err := h.services.ChatService.ListMessages(ctx, conversationID)
	if err != nil {
		log.Err(err).Int64("conversation_id", conversationID).Msg("listing messages failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) appendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conversationID, err := conversationIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id")
		http.Error(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	var request models.AppendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	message, err := h.services.ChatService.AppendMessage(ctx, conversationID, request.Role, request.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		}

		log.Err(err).Int64("conversation_id", conversationID).Msg("message append failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}
