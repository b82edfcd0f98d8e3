package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-quick-add/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.ErrorCode)
		assert.Equal(t, response.MessageSuccess, resp.Message)
		assert.Equal(t, map[string]any{"foo": "bar"}, resp.Data)
	})

	t.Run("Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("test err"))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.ErrorCode)
		assert.Equal(t, "test err", resp.Message)
	})

	t.Run("Wrapped HTTPError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, fmt.Errorf("lookup: %w", response.NewHTTPError(http.StatusConflict, "stale")))

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusConflict, resp.ErrorCode)
		assert.Equal(t, "stale", resp.Message)
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("db crash"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db crash")
	})
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, loc)

	b, err := json.Marshal(response.NewDateTime(&tm))
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01T15:30:00+07:00"`, string(b))

	assert.Nil(t, response.NewDateTime(nil))
}
