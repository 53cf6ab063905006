package models

import "io"

// ImageUpload is an image attached to an outgoing message.
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        io.Reader
}

// SendRequest is an outgoing chat input as typed by the user.
type SendRequest struct {
	ChatID      string       `json:"-"`
	SenderID    string       `json:"-"`
	RecipientID string       `json:"recipient_id,omitempty"`
	Text        string       `json:"text"`
	Image       *ImageUpload `json:"-"`
}

// SendResult describes what happened to a [SendRequest].
//
// Exactly one of Message or Transform is set: Transform when the input was
// a bulk transform command, Message otherwise.
type SendResult struct {
	Command   Direction        `json:"command,omitempty"`
	Transform *TransformResult `json:"transform,omitempty"`
	Message   *Message         `json:"message,omitempty"`
	AIReply   *Message         `json:"ai_reply,omitempty"`
	AIError   string           `json:"ai_error,omitempty"`
}

// TransformRequest asks for an explicit bulk transform of a conversation.
type TransformRequest struct {
	Direction Direction `json:"direction"`
}

// TransformResult reports a completed bulk transform.
type TransformResult struct {
	ChatID    string    `json:"chat_id"`
	Direction Direction `json:"direction"`
	// Count is the number of messages rewritten.
	Count int `json:"count"`
	// Version is the conversation version after the write.
	Version int64 `json:"version"`
	// Attempts is how many fetch-transform-write rounds were needed.
	Attempts int `json:"attempts"`
	// KeyFingerprint identifies the key without revealing it.
	KeyFingerprint string `json:"key_fingerprint"`
}

// MessagesResponse is the body returned when listing a conversation.
type MessagesResponse struct {
	ChatID   string    `json:"chat_id"`
	Version  int64     `json:"version"`
	Messages []Message `json:"messages"`
}
