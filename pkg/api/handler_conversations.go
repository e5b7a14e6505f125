package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/llmcouncil/councild/pkg/services"
)

// conversationView is the metadata shape returned in list responses.
type conversationView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	MessageCount int    `json:"message_count"`
}

// conversationDetailView adds the full message history.
type conversationDetailView struct {
	conversationView
	Messages []services.ChatMessage `json:"messages"`
}

func summaryView(s services.ConversationSummary, messageCount int) conversationView {
	return conversationView{
		ID:           s.ID.String(),
		Title:        s.Title,
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339),
		MessageCount: messageCount,
	}
}

// ListConversations handles GET /v1/conversations: metadata for every
// conversation visible to the caller, newest first.
func (s *Server) ListConversations(c *gin.Context) {
	summaries, err := s.store.List(c.Request.Context(), caller(c).AccountKeyIDs)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]conversationView, 0, len(summaries))
	for _, sum := range summaries {
		n, err := s.store.MessageCount(c.Request.Context(), sum.ID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		views = append(views, summaryView(sum, n))
	}
	c.JSON(http.StatusOK, views)
}

// CreateConversation handles POST /v1/conversations.
func (s *Server) CreateConversation(c *gin.Context) {
	id := uuid.New()
	if err := s.store.Ensure(c.Request.Context(), id, caller(c).OwnerKeyID); err != nil {
		mapServiceError(c, err)
		return
	}

	detail, err := s.store.Get(c.Request.Context(), id, caller(c).AccountKeyIDs)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detailView(detail))
}

// GetConversation handles GET /v1/conversations/:id with full history.
func (s *Server) GetConversation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, http.StatusNotFound, "not_found")
		return
	}

	detail, err := s.store.Get(c.Request.Context(), id, caller(c).AccountKeyIDs)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detailView(detail))
}

func detailView(d *services.ConversationDetail) conversationDetailView {
	msgs := d.Messages
	if msgs == nil {
		msgs = []services.ChatMessage{}
	}
	return conversationDetailView{
		conversationView: summaryView(d.ConversationSummary, len(d.Messages)),
		Messages:         msgs,
	}
}
