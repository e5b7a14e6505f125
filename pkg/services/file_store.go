package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileConversationStore is the prototype store for database-less
// development: one JSON file per conversation under the data directory.
// Ownership is not enforced; it only exists for ALLOW_NO_AUTH mode.
type FileConversationStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileConversationStore creates the data directory if needed.
func NewFileConversationStore(dir string) (*FileConversationStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileConversationStore{dir: dir}, nil
}

var _ ConversationStore = (*FileConversationStore)(nil)

type fileConversation struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Messages  []ChatMessage `json:"messages"`
}

func (s *FileConversationStore) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

func (s *FileConversationStore) load(id uuid.UUID) (*fileConversation, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: conversation %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read conversation file: %w", err)
	}
	var conv fileConversation
	if err := json.Unmarshal(data, &conv); err != nil {
		return nil, fmt.Errorf("failed to parse conversation file: %w", err)
	}
	return &conv, nil
}

func (s *FileConversationStore) save(conv *fileConversation) error {
	data, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode conversation: %w", err)
	}
	if err := os.WriteFile(s.path(conv.ID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write conversation file: %w", err)
	}
	return nil
}

func (s *FileConversationStore) Ensure(_ context.Context, id uuid.UUID, _ *uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.load(id); err == nil {
		return nil
	}
	now := time.Now()
	return s.save(&fileConversation{
		ID:        id,
		Title:     "New Conversation",
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []ChatMessage{},
	})
}

func (s *FileConversationStore) MessageCount(_ context.Context, id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.load(id)
	if err != nil {
		return 0, err
	}
	return len(conv.Messages), nil
}

func (s *FileConversationStore) AppendMessage(_ context.Context, id uuid.UUID, role, content string) error {
	if role != "user" && role != "assistant" {
		return NewValidationError("role", "must be user or assistant")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.load(id)
	if err != nil {
		return err
	}
	now := time.Now()
	conv.Messages = append(conv.Messages, ChatMessage{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: now,
	})
	conv.UpdatedAt = now
	return s.save(conv)
}

func (s *FileConversationStore) SetTitle(_ context.Context, id uuid.UUID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.load(id)
	if err != nil {
		return err
	}
	conv.Title = title
	return s.save(conv)
}

func (s *FileConversationStore) History(_ context.Context, id uuid.UUID) ([]ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return append([]ChatMessage(nil), conv.Messages...), nil
}

func (s *FileConversationStore) List(_ context.Context, _ []uuid.UUID) ([]ConversationSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data dir: %w", err)
	}

	var out []ConversationSummary
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		conv, err := s.load(id)
		if err != nil {
			continue
		}
		out = append(out, ConversationSummary{
			ID:        conv.ID,
			Title:     conv.Title,
			CreatedAt: conv.CreatedAt,
			UpdatedAt: conv.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (s *FileConversationStore) Get(ctx context.Context, id uuid.UUID, _ []uuid.UUID) (*ConversationDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return &ConversationDetail{
		ConversationSummary: ConversationSummary{
			ID:        conv.ID,
			Title:     conv.Title,
			CreatedAt: conv.CreatedAt,
			UpdatedAt: conv.UpdatedAt,
		},
		Messages: append([]ChatMessage(nil), conv.Messages...),
	}, nil
}
