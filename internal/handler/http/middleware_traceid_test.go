// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	env := newHandlerTestEnv(t, "")

	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := env.do(http.MethodGet, "/api/version/", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestWithTraceID_PropagatesIncoming(t *testing.T) {
	env := newHandlerTestEnv(t, "")

	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("X-Trace-ID", "trace-from-upstream")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-upstream", rec.Header().Get("X-Trace-ID"))
}
