package chat

import (
	"fmt"
	"math/rand"
	"time"
)

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Kind distinguishes real messages from transient typing placeholders.
type Kind string

const (
	KindText   Kind = "text"
	KindTyping Kind = "typing"
)

// Message is a single immutable conversation turn.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"type"`
}

// NewMessage builds a text message stamped with the current time.
func NewMessage(sender Sender, content string) Message {
	return Message{
		ID:        newMessageID(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
		Kind:      KindText,
	}
}

func newMessageID() string {
	return fmt.Sprintf("msg_%d_%06d", time.Now().UnixMilli(), rand.Intn(1000000))
}
