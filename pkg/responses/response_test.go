package responses

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dugoutlabs/dugout/pkg/apperr"
	"github.com/gin-gonic/gin"
)

func TestSendEngineError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		code int
	}{
		{apperr.NotFound("game"), http.StatusNotFound},
		{apperr.Validation("outs_before must be between 0 and 2"), http.StatusBadRequest},
		{apperr.Conflict("at-bat already ended"), http.StatusConflict},
		{apperr.Store(errors.New("deadlock detected")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		SendEngineError(c, tc.err)
		if w.Code != tc.code {
			t.Errorf("SendEngineError(%v) status = %d, want %d", tc.err, w.Code, tc.code)
		}
	}
}
