package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-phone-notify/internal/utils"
	"github.com/MKhiriev/go-phone-notify/models"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip inflates gzip request bodies and compresses responses for callers
// that accept gzip. Sound files travel as base64 JSON and compress well.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				_, _ = utils.WriteJSON(w, models.InvalidRequestBody, models.InvalidRequestBody.StatusCode)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		gz.Reset(w)
		defer func() {
			_ = gz.Close()
			gzipWriterPool.Put(gz)
		}()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: gz}, r)
	})
}

func newGzipBody(body io.ReadCloser) (io.ReadCloser, error) {
	reader := gzipReaderPool.Get().(*gzip.Reader)
	if err := reader.Reset(body); err != nil {
		gzipReaderPool.Put(reader)
		return nil, err
	}

	return &gzipBody{Reader: reader, source: body}, nil
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
	source io.ReadCloser
}

func (b *gzipBody) Close() error {
	_ = b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	return b.source.Close()
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
