package models

// WebhookIntent identifies the matched intent of a turn.
type WebhookIntent struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName"`
}

// WebhookQueryResult carries the dialog platform's classification result for
// a single user utterance. Parameter value shapes vary per intent: scalars,
// lists, or nested objects depending on upstream extraction confidence.
type WebhookQueryResult struct {
	QueryText    string                 `json:"queryText,omitempty"`
	Parameters   map[string]interface{} `json:"parameters"`
	Intent       WebhookIntent          `json:"intent"`
	LanguageCode string                 `json:"languageCode,omitempty"`
}

// WebhookRequest is the fulfillment request posted by the dialog platform
// once per conversational turn.
type WebhookRequest struct {
	ResponseID  string              `json:"responseId,omitempty"`
	Session     string              `json:"session,omitempty"`
	QueryResult *WebhookQueryResult `json:"queryResult"`
}

// WebhookResponse is the fulfillment reply presented to the user.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}
