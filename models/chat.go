package models

import "time"

// Chat is the conversation document: an ordered sequence of messages plus
// the optimistic-concurrency version of the whole sequence.
//
// Version starts at 0 for a conversation that does not exist yet and is
// incremented by every append and every bulk replace.
type Chat struct {
	ChatID   string    `json:"chat_id"`
	Version  int64     `json:"version"`
	Messages []Message `json:"messages"`
}

// UserChat is a per-user index entry describing the latest activity in one
// conversation the user takes part in.
type UserChat struct {
	UserID      string    `json:"user_id"`
	ChatID      string    `json:"chat_id"`
	LastMessage string    `json:"last_message"`
	Date        time.Time `json:"date"`
}

// ChatIDFor derives the conversation identifier shared by two users.
// The result does not depend on argument order.
func ChatIDFor(a, b string) string {
	if a > b {
		return a + b
	}
	return b + a
}

// ChatEventKind names what changed in a conversation.
type ChatEventKind string

const (
	// ChatEventAppended is published after a message was added.
	ChatEventAppended ChatEventKind = "appended"
	// ChatEventTransformed is published after a bulk transform rewrote the
	// conversation.
	ChatEventTransformed ChatEventKind = "transformed"
)

// ChatEvent notifies live subscribers that a conversation changed. Clients
// react by re-fetching the conversation.
type ChatEvent struct {
	ChatID  string        `json:"chat_id"`
	Kind    ChatEventKind `json:"kind"`
	Version int64         `json:"version"`
}
