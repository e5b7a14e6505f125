package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/ent"
	"github.com/llmcouncil/councild/ent/conversation"
	"github.com/llmcouncil/councild/ent/message"
)

// ConversationSummary is the list view of a conversation.
type ConversationSummary struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	OwnerKey  *uuid.UUID `json:"-"`
}

// ChatMessage is one persisted conversation turn.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationDetail is a conversation with its full message history.
type ConversationDetail struct {
	ConversationSummary
	Messages []ChatMessage `json:"messages"`
}

// ConversationStore abstracts conversation persistence so the engines can
// run against Postgres in production and the file-backed prototype store in
// database-less development.
type ConversationStore interface {
	// Ensure creates the conversation if it does not exist yet.
	Ensure(ctx context.Context, id uuid.UUID, ownerKeyID *uuid.UUID) error

	// MessageCount reports how many messages the conversation holds.
	MessageCount(ctx context.Context, id uuid.UUID) (int, error)

	// AppendMessage appends one turn and bumps the conversation's
	// updated_at.
	AppendMessage(ctx context.Context, id uuid.UUID, role, content string) error

	// SetTitle overwrites the conversation title.
	SetTitle(ctx context.Context, id uuid.UUID, title string) error

	// History returns all messages oldest-first.
	History(ctx context.Context, id uuid.UUID) ([]ChatMessage, error)

	// List returns summaries of every conversation owned by one of the
	// given keys, newest-first. A nil key set lists unowned conversations.
	List(ctx context.Context, keyIDs []uuid.UUID) ([]ConversationSummary, error)

	// Get returns a conversation with history, enforcing visibility: the
	// conversation's owner key must be in keyIDs (or both unset).
	Get(ctx context.Context, id uuid.UUID, keyIDs []uuid.UUID) (*ConversationDetail, error)
}

// PostgresConversationStore is the ent-backed ConversationStore.
type PostgresConversationStore struct {
	client *ent.Client
}

// NewPostgresConversationStore creates a store over the given ent client,
// which may be transaction-scoped.
func NewPostgresConversationStore(client *ent.Client) *PostgresConversationStore {
	return &PostgresConversationStore{client: client}
}

var _ ConversationStore = (*PostgresConversationStore)(nil)

func (s *PostgresConversationStore) Ensure(ctx context.Context, id uuid.UUID, ownerKeyID *uuid.UUID) error {
	exists, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check conversation: %w", err)
	}
	if exists {
		return nil
	}

	builder := s.client.Conversation.Create().SetID(id)
	if ownerKeyID != nil {
		builder.SetOwnerKeyID(*ownerKeyID)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the row exists now.
			return nil
		}
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (s *PostgresConversationStore) MessageCount(ctx context.Context, id uuid.UUID) (int, error) {
	n, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(id)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}

func (s *PostgresConversationStore) AppendMessage(ctx context.Context, id uuid.UUID, role, content string) error {
	if role != "user" && role != "assistant" {
		return NewValidationError("role", "must be user or assistant")
	}

	if _, err := s.client.Message.Create().
		SetConversationID(id).
		SetRole(message.Role(role)).
		SetContent(content).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	if _, err := s.client.Conversation.Update().
		Where(conversation.IDEQ(id)).
		SetUpdatedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	return nil
}

func (s *PostgresConversationStore) SetTitle(ctx context.Context, id uuid.UUID, title string) error {
	n, err := s.client.Conversation.Update().
		Where(conversation.IDEQ(id)).
		SetTitle(title).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: conversation %s", ErrNotFound, id)
	}
	return nil
}

func (s *PostgresConversationStore) History(ctx context.Context, id uuid.UUID) ([]ChatMessage, error) {
	rows, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(id)).
		Order(ent.Asc(message.FieldCreatedAt), ent.Asc(message.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	msgs := make([]ChatMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, ChatMessage{
			ID:        row.ID,
			Role:      string(row.Role),
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
		})
	}
	return msgs, nil
}

func (s *PostgresConversationStore) List(ctx context.Context, keyIDs []uuid.UUID) ([]ConversationSummary, error) {
	q := s.client.Conversation.Query()
	if len(keyIDs) > 0 {
		q = q.Where(conversation.OwnerKeyIDIn(keyIDs...))
	} else {
		q = q.Where(conversation.OwnerKeyIDIsNil())
	}

	rows, err := q.Order(ent.Desc(conversation.FieldUpdatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	out := make([]ConversationSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summaryFromRow(row))
	}
	return out, nil
}

func (s *PostgresConversationStore) Get(ctx context.Context, id uuid.UUID, keyIDs []uuid.UUID) (*ConversationDetail, error) {
	row, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: conversation %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if !visible(row.OwnerKeyID, keyIDs) {
		return nil, fmt.Errorf("%w: conversation %s", ErrForbidden, id)
	}

	history, err := s.History(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ConversationDetail{
		ConversationSummary: summaryFromRow(row),
		Messages:            history,
	}, nil
}

func summaryFromRow(row *ent.Conversation) ConversationSummary {
	return ConversationSummary{
		ID:        row.ID,
		Title:     row.Title,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		OwnerKey:  row.OwnerKeyID,
	}
}

// visible reports whether a conversation owned by owner may be read by a
// caller holding keyIDs. Unowned conversations are visible only to callers
// without keys (the no-auth development mode).
func visible(owner *uuid.UUID, keyIDs []uuid.UUID) bool {
	if owner == nil {
		return len(keyIDs) == 0
	}
	for _, k := range keyIDs {
		if k == *owner {
			return true
		}
	}
	return false
}
