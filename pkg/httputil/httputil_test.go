package httputil_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchwise/matchwise-backend/pkg/errors"
	"github.com/matchwise/matchwise-backend/pkg/httputil"
)

func TestJSON_EnvelopesData(t *testing.T) {
	rec := httptest.NewRecorder()

	httputil.JSON(rec, 200, map[string]string{"id": "abc"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestError_RendersAppError(t *testing.T) {
	rec := httptest.NewRecorder()

	httputil.Error(rec, errors.NotFound("candidate"))

	assert.Equal(t, 404, rec.Code)

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "candidate not found", resp.Error.Message)
}

func TestError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	httputil.Error(rec, errors.Validation(map[string]string{"text": "is required"}))

	assert.Equal(t, 400, rec.Code)

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "is required", resp.Error.Details["text"])
}

func TestError_UnknownErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	httputil.Error(rec, assert.AnError)

	assert.Equal(t, 500, rec.Code)
}
