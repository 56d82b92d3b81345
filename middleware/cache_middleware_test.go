package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/service/cache/provider"
	"github.com/x-xyz/ensapi/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	local  provider.Provider
	shared provider.Provider
	cache  *HttpCache
	cont   ctx.Ctx
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.local = primitive.NewPrimitive("local", 1)
	s.shared = primitive.NewPrimitive("shared", 1)
	s.cache = NewHttpCache(s.local, s.shared)
	s.cont = ctx.Background()
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) serve(target string, status int, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", s.cont)

	h := func(c echo.Context) error {
		return c.String(status, body)
	}
	s.Require().NoError(s.cache.Middleware(30 * time.Second)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	rec := s.serve("/", http.StatusOK, "Hello, World")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())

	rec = s.serve("/", http.StatusOK, "Hello, again")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())

	key := "httpCache:" + generateKey("/")
	_, _, err := s.local.Get(s.cont, key)
	s.NoError(err)
	_, ttl, err := s.shared.Get(s.cont, key)
	s.NoError(err)
	s.Greater(ttl, maxLocalTtl)
}

func (s *cacheMiddlewareSuite) TestQueryOrderShareKey() {
	s.serve("/?b=2&a=1", http.StatusOK, "first")
	rec := s.serve("/?a=1&b=2", http.StatusOK, "second")
	s.Equal("first", rec.Body.String())
}

func (s *cacheMiddlewareSuite) TestErrorNotCached() {
	rec := s.serve("/fail", http.StatusBadRequest, "bad")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.serve("/fail", http.StatusOK, "good")
	s.Equal("good", rec.Body.String())
}

func (s *cacheMiddlewareSuite) TestLocalOnly() {
	s.cache = NewHttpCache(s.local, nil)
	s.serve("/local", http.StatusOK, "first")
	rec := s.serve("/local", http.StatusOK, "second")
	s.Equal("first", rec.Body.String())
}
