package response

// Response is the JSON envelope for error replies outside the page flow.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}
