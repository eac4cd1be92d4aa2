package server

import (
	"Atrium/handler"
)

type Handlers struct {
	Home    *handler.Home
	Note    *handler.Note
	Contact *handler.Contact
	Blog    *handler.Blog
	Admin   *handler.Admin
	Files   *handler.Files
	Auth    *handler.Auth
	Pages   *handler.Pages
}
