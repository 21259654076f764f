package v1

import (
	"net/http"
	"testing"
)

func TestHandlers_GetTextures(t *testing.T) {
	t.Parallel()

	env := Setup(t, common)

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		env.R(t).GET("/api/v1/textures").
			Expect().
			Status(http.StatusOK).
			JSON().
			Array().
			NotEmpty()
	})

	t.Run("by category", func(t *testing.T) {
		t.Parallel()
		arr := env.R(t).GET("/api/v1/textures").
			WithQuery("category", "marble").
			Expect().
			Status(http.StatusOK).
			JSON().
			Array()
		arr.NotEmpty()
		arr.Path("$[*].category").Array().ConsistsOf(repeat("marble", len(arr.Raw()))...)
	})

	t.Run("categories", func(t *testing.T) {
		t.Parallel()
		obj := env.R(t).GET("/api/v1/textures/categories").
			WithQuery("lang", "en").
			Expect().
			Status(http.StatusOK).
			JSON().
			Array().
			Value(0).
			Object()
		obj.Value("id").String().IsEqual("marble")
		obj.Value("name").String().IsEqual("Marble")
	})
}

func TestHandlers_GetTexture(t *testing.T) {
	t.Parallel()

	env := Setup(t, common)

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		env.R(t).GET("/api/v1/textures/{textureID}", "no-such-texture").
			Expect().
			Status(http.StatusNotFound)
	})

	t.Run("localized", func(t *testing.T) {
		t.Parallel()
		env.R(t).GET("/api/v1/textures/{textureID}", "marble-white").
			Expect().
			Status(http.StatusOK).
			JSON().
			Object().
			Value("category").String().IsEqual("marble")
	})
}

func repeat(s string, n int) []any {
	res := make([]any, n)
	for i := range res {
		res[i] = s
	}
	return res
}
