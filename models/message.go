package models

// Message is a rendered catalog entry returned by the messages endpoint.
type Message struct {
	// Key is the dotted message ID, e.g. "greeting.welcome".
	Key string `json:"key"`

	// Culture is the negotiated culture the message was requested in. The
	// value may come from the default culture when the key is missing there.
	Culture string `json:"culture"`

	Value string `json:"value"`
}
