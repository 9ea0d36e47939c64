package youtubedomain

import "fmt"

type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (e *ErrorResponse) String() string {
	if e.Error.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (status=%s)", e.Error.Message, e.Error.Status)
}
