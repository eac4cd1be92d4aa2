package types

// AddNoteRequest is the home page note form.
type AddNoteRequest struct {
	Note string `form:"note" json:"note"`
}

// ActionResult is the JSON body of the DELETE endpoints.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
