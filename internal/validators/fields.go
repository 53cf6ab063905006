package validators

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldChatID targets the conversation identifier.
	FieldChatID = "chat_id"

	// FieldSenderID targets the author of a message.
	FieldSenderID = "sender_id"

	// FieldRecipientID targets the optional recipient of a message.
	FieldRecipientID = "recipient_id"

	// FieldText targets the message body and attached image.
	FieldText = "text"

	// FieldDirection targets the direction of a bulk transform.
	FieldDirection = "direction"
)

// MaxMessageRunes is the longest accepted message body, in runes.
const MaxMessageRunes = 4096
