package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// Code identifica o erro para o cliente da API de operação. O prefixo agrupa a origem.
type Code string

const (
	ErrInvalidToken          Code = "AUTH_006"
	ErrExpiredToken          Code = "AUTH_007"
	ErrInsufficientPrivilege Code = "AUTH_008"

	ErrInvalidFormat    Code = "VAL_003"
	ErrRouteNotFound    Code = "VAL_004"
	ErrMethodNotAllowed Code = "VAL_005"

	ErrJobNotFound       Code = "JOB_001"
	ErrJobAlreadyRunning Code = "JOB_002"

	ErrInternalServer    Code = "SRV_001"
	ErrDatabaseOperation Code = "SRV_002"
)

type codeInfo struct {
	status  int
	message string
}

// catalog guarda o status HTTP e a mensagem padrão de cada código
var catalog = map[Code]codeInfo{
	ErrInvalidToken:          {http.StatusUnauthorized, "Token inválido"},
	ErrExpiredToken:          {http.StatusUnauthorized, "Token expirado"},
	ErrInsufficientPrivilege: {http.StatusForbidden, "Privilégios insuficientes"},
	ErrInvalidFormat:         {http.StatusBadRequest, "Formato de dados inválido"},
	ErrRouteNotFound:         {http.StatusNotFound, "Rota não encontrada"},
	ErrMethodNotAllowed:      {http.StatusMethodNotAllowed, "Método não suportado"},
	ErrJobNotFound:           {http.StatusNotFound, "Job não registrado"},
	ErrJobAlreadyRunning:     {http.StatusConflict, "Job já em execução"},
	ErrInternalServer:        {http.StatusInternalServerError, "Erro interno do servidor"},
	ErrDatabaseOperation:     {http.StatusInternalServerError, "Erro ao acessar o banco de dados"},
}

// APIError é o corpo JSON de toda resposta de erro
type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve 500 para códigos fora do catálogo
func StatusFor(code Code) int {
	if info, ok := catalog[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// New monta o erro usando a mensagem padrão do código quando message é vazia
func New(code Code, message string, details any) APIError {
	if message == "" {
		message = catalog[code].message
	}
	return APIError{Code: code, Message: message, Details: details}
}

// FromError usa a mensagem de err. Um err nil vira erro interno.
func FromError(err error, code Code) APIError {
	if err == nil {
		return New(ErrInternalServer, "", nil)
	}
	return New(code, err.Error(), nil)
}

func Write(w http.ResponseWriter, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(apiErr.Code))
	_ = jsoniter.NewEncoder(w).Encode(apiErr)
}

func WriteError(w http.ResponseWriter, code Code, message string, details any) {
	Write(w, New(code, message, details))
}
