package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"student-service/internal/httputil"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	httputil.RespondWithError(w, http.StatusNotFound, "Student not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Student not found"}`, w.Body.String())
}

func TestRespondWithValidation(t *testing.T) {
	w := httptest.NewRecorder()
	httputil.RespondWithValidation(w, httputil.ErrorResponse{Field: "email", Message: "x is not a valid email type"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"validation failed","field":"email","message":"x is not a valid email type"}`, w.Body.String())
}

func TestRespondWithJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()
	httputil.RespondWithJSON(w, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
