package handlers

import (
	"encoding/json"
	"testing"

	"github.com/backsoul/gamebot/pkg/models"
	"github.com/backsoul/gamebot/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestHealthCheck(t *testing.T) {
	handler := NewStatsHandler(storage.NewMemoryStorage(), nil)

	ctx := &fasthttp.RequestCtx{}
	handler.HealthCheck(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.True(t, parseResponse(t, ctx).Success)
}

func TestGetStats(t *testing.T) {
	store := storage.NewMemoryStorage()
	require.NoError(t, store.IncrementGamesPlayed())
	require.NoError(t, store.IncrementMessages())

	handler := NewStatsHandler(store, nil)

	ctx := &fasthttp.RequestCtx{}
	handler.GetStats(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	raw, err := json.Marshal(parseResponse(t, ctx).Data)
	require.NoError(t, err)
	var stats models.BotStats
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, int64(1), stats.GamesPlayed)
	assert.Equal(t, int64(1), stats.MessagesCount)
}

func TestGetActivity(t *testing.T) {
	store := storage.NewMemoryStorage()
	for _, message := range []string{"uno", "dos", "tres"} {
		require.NoError(t, store.AddActivity(message))
	}

	handler := NewStatsHandler(store, nil)

	t.Run("Sin límite devuelve todo", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.SetRequestURI("/api/activity")
		handler.GetActivity(ctx)

		raw, err := json.Marshal(parseResponse(t, ctx).Data)
		require.NoError(t, err)
		var entries []models.ActivityEntry
		require.NoError(t, json.Unmarshal(raw, &entries))
		assert.Len(t, entries, 3)
	})

	t.Run("Con límite", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.SetRequestURI("/api/activity?limit=2")
		handler.GetActivity(ctx)

		raw, err := json.Marshal(parseResponse(t, ctx).Data)
		require.NoError(t, err)
		var entries []models.ActivityEntry
		require.NoError(t, json.Unmarshal(raw, &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "tres", entries[0].Message)
	})

	t.Run("Límite inválido", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.SetRequestURI("/api/activity?limit=abc")
		handler.GetActivity(ctx)
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	})
}
