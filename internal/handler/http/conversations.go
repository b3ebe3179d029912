package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chatvault/internal/logger"
	"chatvault/internal/utils"
	"chatvault/models"
)

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conversations, err := h.services.ChatService.ListConversations(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing conversations failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, conversations, http.StatusOK)
}

func (h *Handler) createConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	conversation, err := h.services.ChatService.CreateConversation(ctx, userID, request.Title)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("conversation creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, conversation, http.StatusCreated)
}

func (h *Handler) renameConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conversationID, err := conversationIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id")
		http.Error(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	var request models.RenameConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ChatService.RenameConversation(ctx, conversationID, request.Title); err != nil {
		log.Err(err).Int64("conversation_id", conversationID).Msg("conversation rename failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conversationID, err := conversationIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid conversation id")
		http.Error(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	if err := h.services.ChatService.DeleteConversation(ctx, conversationID); err != nil {
		log.Err(err).Int64("conversation_id", conversationID).Msg("conversation deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// conversationIDFromURL parses the {conversationID} route parameter.
func conversationIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "conversationID"), 10, 64)
}
