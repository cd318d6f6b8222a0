package render_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carteira/internal/http/render"
)

func TestDate_JSON(t *testing.T) {
	var body struct {
		Due  render.Date  `json:"due"`
		Paid *render.Date `json:"paid"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-02-29","paid":null}`), &body))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), body.Due.Time)
	assert.Nil(t, body.Paid)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-02-29","paid":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"due":"29/02/2024"}`), &body))
}

func TestQueryHelpers(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?from=2024-03-01&limit=3&account_id=00000000-0000-0000-0000-000000000009", nil)
		rec := httptest.NewRecorder()

		from, ok := render.QueryDate(rec, req, "from")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *from)

		to, ok := render.QueryDate(rec, req, "to")
		require.True(t, ok)
		assert.Nil(t, to)

		limit, ok := render.QueryInt(rec, req, "limit", 5)
		require.True(t, ok)
		assert.Equal(t, 3, limit)

		id, ok := render.QueryID(rec, req, "account_id")
		require.True(t, ok)
		assert.Equal(t, "00000000-0000-0000-0000-000000000009", id.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?from=March&limit=-1", nil)

		rec := httptest.NewRecorder()
		_, ok := render.QueryDate(rec, req, "from")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = httptest.NewRecorder()
		_, ok = render.QueryInt(rec, req, "limit", 5)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
