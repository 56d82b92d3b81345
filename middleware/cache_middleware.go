package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/domain/keys"
	"github.com/x-xyz/ensapi/service/cache"
	compoundcache "github.com/x-xyz/ensapi/service/cache/compoundCache"
	"github.com/x-xyz/ensapi/service/cache/provider"
)

const maxLocalTtl = 10 * time.Second

// HttpCache caches successful GET responses in an in-process layer and, when
// configured, a shared one behind it.
type HttpCache struct {
	local  provider.Provider
	shared provider.Provider
}

// NewHttpCache needs a local provider; shared may be nil.
func NewHttpCache(local, shared provider.Provider) *HttpCache {
	if local == nil {
		panic("http cache needs a local provider")
	}
	return &HttpCache{local: local, shared: shared}
}

// Response is the cached response data structure.
type Response struct {
	// Value is the cached response value.
	Value []byte

	// Header is the cached response header.
	Header http.Header
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(URL *url.URL) {
	params := URL.Query()
	for _, param := range params {
		sort.Slice(param, func(i, j int) bool {
			return param[i] < param[j]
		})
	}
	URL.RawQuery = params.Encode()
}

func generateKey(URL string) string {
	hash := fnv.New64a()
	hash.Write([]byte(URL))

	return strconv.FormatUint(hash.Sum64(), 36)
}

func (h *HttpCache) service(ttl time.Duration) cache.Service {
	localTtl := maxLocalTtl
	if ttl < localTtl {
		localTtl = ttl
	}

	// oversized responses are skipped by the local provider and still reach
	// the shared layer
	layers := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   localTtl,
			Pfx:   keys.PfxHttpCache,
			Cache: h.local,
		}),
	}
	if h.shared != nil {
		layers = append(layers, cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxHttpCache,
			Cache: h.shared,
		}))
	}
	return compoundcache.NewCompoundCache(layers)
}

// Middleware serves cached responses for ttl. Only responses below 400 are stored.
func (h *HttpCache) Middleware(ttl time.Duration) echo.MiddlewareFunc {
	cacheService := h.service(ttl)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			sortURLParams(c.Request().URL)
			key := generateKey(c.Request().URL.String())

			response := Response{}
			err := cacheService.Get(ctx, key, &response)
			if err == nil {
				// cache hit
				for k, v := range response.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().WriteHeader(http.StatusOK)
				c.Response().Write(response.Value)
				return nil
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
				}).Error("failed to cacheService.Get")
			}

			// cache miss
			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			writer := &bodyDumpResponseWriter{Writer: mw, ResponseWriter: c.Response().Writer}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			statusCode := writer.statusCode
			if statusCode >= 400 {
				return nil
			}

			if err := cacheService.Set(ctx, key, Response{
				Value:  resBody.Bytes(),
				Header: writer.Header(),
			}); err != nil {
				ctx.WithFields(log.Fields{
					"err": err,
				}).Error("failed to cacheService.Set")
			}

			return nil
		}
	}
}
