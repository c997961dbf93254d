package model

// JournalEntry is one immutable note authored against an entity.
// The JSON shape matches the persisted entry log layout.
type JournalEntry struct {
	ID      int64  `json:"id"`      // creation time in unix milliseconds
	Date    string `json:"date"`    // localized creation date
	Author  string `json:"author"`  // display name at creation time
	Content string `json:"content"` // free text as entered
}

// DefaultAuthor is used when the acting user has no display name
const DefaultAuthor = "User"
