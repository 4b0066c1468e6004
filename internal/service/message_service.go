package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"vybe/internal/models"
	"vybe/internal/repository"
)

const maxMessageLen = 2000

// Conversation is a derived thread between the current user and one
// counterpart. Conversations are never stored; they fall out of grouping
// the user's messages by the other participant.
type Conversation struct {
	CounterpartID string           `json:"counterpart_id"`
	Counterpart   *models.User     `json:"counterpart,omitempty"`
	Messages      []models.Message `json:"messages"`
	LastMessage   models.Message   `json:"last_message"`
	// UnreadCount counts messages the counterpart sent that the current
	// user has not read yet.
	UnreadCount int `json:"unread_count"`
}

// MessageService handles direct messaging between artists.
type MessageService struct {
	messageRepo      repository.MessageRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewMessageService returns a new MessageService.
func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *MessageService {
	return &MessageService{
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// Send delivers a message and drops a notification for the receiver.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Message content is required")
	}
	if len(content) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 2000 characters)")
	}
	if senderID == receiverID {
		return nil, models.NewValidationError("Cannot message yourself")
	}

	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  s.now(),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:    receiver.ID,
		Content:   "New message from " + sender.ArtistName,
		Timestamp: s.now(),
		Type:      models.NotificationMessage,
	}
	// A failed notification never fails the send.
	_ = s.notificationRepo.Create(ctx, notification)

	return message, nil
}

// DeriveConversations groups a user's messages into per-counterpart threads.
// Messages must be ordered oldest first. Threads come back newest-activity
// first; ties keep first-contact order.
func DeriveConversations(userID string, messages []models.Message) []Conversation {
	byCounterpart := make(map[string]*Conversation)
	order := make([]string, 0)

	for _, message := range messages {
		counterpartID := message.SenderID
		if counterpartID == userID {
			counterpartID = message.ReceiverID
		}

		conversation, ok := byCounterpart[counterpartID]
		if !ok {
			conversation = &Conversation{CounterpartID: counterpartID}
			byCounterpart[counterpartID] = conversation
			order = append(order, counterpartID)
		}
		conversation.Messages = append(conversation.Messages, message)
		conversation.LastMessage = message
		if message.ReceiverID == userID && !message.Read {
			conversation.UnreadCount++
		}
	}

	conversations := make([]Conversation, 0, len(byCounterpart))
	for _, counterpartID := range order {
		conversations = append(conversations, *byCounterpart[counterpartID])
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.Timestamp.After(conversations[j].LastMessage.Timestamp)
	})
	return conversations
}

// Conversations returns the user's message threads with counterpart
// profiles attached. Counterparts whose account is gone still appear, just
// without a profile.
func (s *MessageService) Conversations(ctx context.Context, userID string) ([]Conversation, error) {
	messages, err := s.messageRepo.ListInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversations := DeriveConversations(userID, messages)
	if len(conversations) == 0 {
		return conversations, nil
	}

	ids := make([]string, 0, len(conversations))
	for _, conversation := range conversations {
		ids = append(ids, conversation.CounterpartID)
	}
	counterparts, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(counterparts))
	for _, counterpart := range counterparts {
		byID[counterpart.ID] = counterpart
	}
	for i := range conversations {
		if counterpart, ok := byID[conversations[i].CounterpartID]; ok {
			u := counterpart
			conversations[i].Counterpart = &u
		}
	}
	return conversations, nil
}

// ConversationWith returns the single thread between the user and one
// counterpart. A pair that has never exchanged messages gets an empty
// conversation rather than an error, so a chat screen can open on anyone.
func (s *MessageService) ConversationWith(ctx context.Context, userID, counterpartID string) (*Conversation, error) {
	messages, err := s.messageRepo.ListInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversation := Conversation{CounterpartID: counterpartID, Messages: []models.Message{}}
	for _, derived := range DeriveConversations(userID, messages) {
		if derived.CounterpartID == counterpartID {
			conversation = derived
			break
		}
	}

	counterparts, err := s.userRepo.ListByIDs(ctx, []string{counterpartID})
	if err != nil {
		return nil, err
	}
	if len(counterparts) == 1 {
		conversation.Counterpart = &counterparts[0]
	}
	return &conversation, nil
}

// MarkRead flags a single message as read. Only the recipient's own
// messages are affected.
func (s *MessageService) MarkRead(ctx context.Context, messageID, userID string) error {
	return s.messageRepo.MarkRead(ctx, messageID, userID)
}

// MarkConversationRead clears the unread count for one thread.
func (s *MessageService) MarkConversationRead(ctx context.Context, userID, counterpartID string) error {
	return s.messageRepo.MarkConversationRead(ctx, userID, counterpartID)
}
