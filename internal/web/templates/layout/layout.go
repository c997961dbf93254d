package layout

import "github.com/mcoot/easylog/internal/model"

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // success, error, warning, info
	Message string
}

// PageData is shared by every full page
type PageData struct {
	Title string
	User  *model.User
	Flash *FlashMessage
}
