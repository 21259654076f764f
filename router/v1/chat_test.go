package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traPtitech/atelier/repository"
)

func TestHandlers_PostChatMessage(t *testing.T) {
	t.Parallel()

	path := "/api/v1/chat/messages"
	env := Setup(t, common)
	u := env.CreateUser(t, "painter")

	t.Run("bad request (empty)", func(t *testing.T) {
		t.Parallel()
		As(env.R(t).POST(path), u).
			WithJSON(map[string]any{"message": "   "}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("bad request (color)", func(t *testing.T) {
		t.Parallel()
		As(env.R(t).POST(path), u).
			WithJSON(map[string]any{"message": "hi", "colorShared": "red"}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("bad request (unknown texture)", func(t *testing.T) {
		t.Parallel()
		As(env.R(t).POST(path), u).
			WithJSON(map[string]any{"message": "hi", "textureShared": "no-such-texture"}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		obj := As(env.R(t).POST(path), u).
			WithJSON(map[string]any{"message": "look at this", "textureShared": "marble-white"}).
			Expect().
			Status(http.StatusCreated).
			JSON().
			Object()
		obj.Value("message").String().IsEqual("look at this")
		obj.Value("userId").Number().IsEqual(u.ID)
		obj.Value("userName").String().IsEqual("painter")
		obj.Value("textureShared").String().IsEqual("marble-white")
		obj.Value("colorShared").IsNull()
	})

	t.Run("color only", func(t *testing.T) {
		t.Parallel()
		As(env.R(t).POST(path), u).
			WithJSON(map[string]any{"message": "", "colorShared": "#ff0000"}).
			Expect().
			Status(http.StatusCreated).
			JSON().
			Object().
			Value("colorShared").String().IsEqual("#FF0000")
	})
}

func TestHandlers_GetChatMessages(t *testing.T) {
	t.Parallel()

	env := Setup(t, s1)
	u := env.CreateUser(t, rand)

	for i := 0; i < 55; i++ {
		_, err := env.Repository.CreateChatMessage(repository.CreateChatMessageArgs{
			UserID:   u.ID,
			UserName: u.DisplayName(),
			Message:  fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	arr := As(env.R(t).GET("/api/v1/chat/messages"), u).
		Expect().
		Status(http.StatusOK).
		JSON().
		Array()
	arr.Length().IsEqual(50)
	arr.Value(0).Object().Value("message").String().IsEqual("message 5")
	arr.Value(49).Object().Value("message").String().IsEqual("message 54")

	assert.Eventually(t, func() bool {
		obj := As(env.R(t).GET("/api/v1/chat/stats"), u).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()
		obj.Value("windowSize").Number().IsEqual(50)
		return obj.Value("totalMessages").Number().Raw() == 55
	}, time.Second, 10*time.Millisecond)
}
