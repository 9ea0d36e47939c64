package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrJobNotFound, "job not found", map[string]string{"job": "unknown"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrJobNotFound, body.Code)
	assert.Equal(t, "job not found", body.Message)
}

func TestWriteErrorDefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrJobAlreadyRunning, "", nil)

	var body APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Job já em execução", body.Message)
	assert.Nil(t, body.Details)
}

func TestStatusForUnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("NOPE_001"))
	assert.Equal(t, http.StatusConflict, StatusFor(ErrJobAlreadyRunning))
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("boom"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)

	fallback := FromError(nil, ErrDatabaseOperation)
	assert.Equal(t, ErrInternalServer, fallback.Code)
	assert.Equal(t, "Erro interno do servidor", fallback.Message)
}
