package extension

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContext(target string) (*Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return &Context{Context: e.NewContext(req, rec)}, rec
}

func TestContext_JSON(t *testing.T) {
	t.Parallel()

	t.Run("compact", func(t *testing.T) {
		t.Parallel()
		c, rec := newTestContext("/")
		require.NoError(t, c.JSON(http.StatusCreated, echo.Map{"name": "Ocre", "colors": []string{"#CC7722"}}))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, echo.MIMEApplicationJSONCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		assert.JSONEq(t, `{"name":"Ocre","colors":["#CC7722"]}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "\n  ")
	})

	t.Run("pretty", func(t *testing.T) {
		t.Parallel()
		c, rec := newTestContext("/?pretty")
		require.NoError(t, c.JSON(http.StatusOK, echo.Map{"name": "Ocre"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"Ocre"}`, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "\n  ")
	})
}

func TestJSONAttachment(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext("/")
	require.NoError(t, JSONAttachment(c, "terra.json", echo.Map{"name": "terra"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename=terra.json`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.JSONEq(t, `{"name":"terra"}`, rec.Body.String())
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zap.NewNop())
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "palette not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, echo.MIMEApplicationJSONCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.JSONEq(t, `{"message":"palette not found"}`, rec.Body.String())
}
