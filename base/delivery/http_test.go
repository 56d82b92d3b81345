package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensapi/domain"
)

func TestMakeJsonResp(t *testing.T) {
	cases := []struct {
		desc    string
		status  int
		data    interface{}
		expCode int
		expBody string
	}{
		{"success", http.StatusOK, map[string]int{"a": 1}, http.StatusOK, `{"data":{"a":1},"status":"success"}`},
		{"error message", http.StatusBadRequest, domain.ErrBadParamInput, http.StatusBadRequest, `{"data":"Given Param is not valid","status":"fail"}`},
		{"not found", http.StatusInternalServerError, domain.ErrNotFound, http.StatusNotFound, `{"data":"Your requested Item is not found","status":"fail"}`},
		{"timeout", http.StatusInternalServerError, xerrors.Errorf("chain 10: %w", domain.ErrResolutionTimeout), http.StatusGatewayTimeout, `{"data":"chain 10: resolution timed out","status":"fail"}`},
		{"deadline", http.StatusInternalServerError, context.DeadlineExceeded, http.StatusGatewayTimeout, `{"data":"context deadline exceeded","status":"fail"}`},
		{"generic error", http.StatusInternalServerError, errors.New("boom"), http.StatusInternalServerError, `{"data":"boom","status":"fail"}`},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		ec := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, MakeJsonResp(ec, c.status, c.data), c.desc)
		require.Equal(t, c.expCode, rec.Code, c.desc)
		require.JSONEq(t, c.expBody, rec.Body.String(), c.desc)
	}
}
