package models

import "time"

// Message is a single chat entry stored inside a conversation.
//
// Text holds either plain text or the output of the stream cipher; after an
// "@encrypt" command it may contain any code point in [0, 255], including
// U+0000, so storage layers must keep it as raw bytes.
type Message struct {
	// ID is an opaque unique identifier (UUIDv7 for messages created here).
	ID string `json:"id"`

	// Text is the message body.
	Text string `json:"text"`

	// SenderID identifies the author. AI replies use [AISenderID].
	SenderID string `json:"senderId"`

	// Date is the moment the message was accepted by the server.
	Date time.Time `json:"date"`

	// Img is an optional URL of an attached image.
	Img *string `json:"img,omitempty"`
}

// WithText returns a copy of m whose Text is replaced by text.
// All other fields, including the Img pointer, are kept as-is.
func (m Message) WithText(text string) Message {
	m.Text = text
	return m
}
