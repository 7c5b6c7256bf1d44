package entities

// NotificationEvent is the message enqueued for the out-of-process mailing
// collaborator when a quote request is created. The JSON field names are part
// of the queue contract and must not change.

type NotificationEvent struct {
	ExternalReferenceID string `json:"externalReferenceId"`
	RecipientEmail      string `json:"recipientEmail"`
	RecipientName       string `json:"recipientName"`
	Subject             string `json:"subject"`
	BodyHTML            string `json:"bodyHtml"`
}
