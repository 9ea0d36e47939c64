package instagramdomain

import "fmt"

// ErrorResponse representa a estrutura de erro da Graph API do Instagram
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado (código 190)
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190
}

func (e *ErrorResponse) String() string {
	if e.Error.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (type=%s code=%d)", e.Error.Message, e.Error.Type, e.Error.Code)
}
