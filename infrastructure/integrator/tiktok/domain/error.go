package tiktokdomain

import "fmt"

// APIError é o envelope de erro presente em toda resposta da API do TikTok.
// Sucesso vem com Code igual a "ok", inclusive em respostas HTTP 200.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	LogID   string `json:"log_id"`
}

func (e APIError) IsOK() bool {
	return e.Code == "" || e.Code == "ok"
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s (log_id=%s)", e.Code, e.Message, e.LogID)
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
