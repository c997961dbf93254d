package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// CreateEntityRequest is the request body for adding an entity
type CreateEntityRequest struct {
	Name string `json:"name" validate:"notblank"`
}

// CreateEntryRequest is the request body for adding a journal entry
type CreateEntryRequest struct {
	Content string `json:"content" validate:"notblank"`
}

// SuggestRequest is the request body for a composer hint
type SuggestRequest struct {
	Text string `json:"text"`
}
