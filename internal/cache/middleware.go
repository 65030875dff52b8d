// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"bytes"
	"net/http"
)

// cacheSeparator splits the stored content type from the body.
var cacheSeparator = []byte("\n\x00\n")

// Pages returns a middleware serving GET responses from the page cache.
// Successful 200 responses are captured and stored with their content type,
// so both HTML pages and the XML sitemaps share one revalidation window.
func Pages(pc *PageCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := RequestKey(r.URL.Path, r.URL.RawQuery)
			if stored, ok := pc.Get(r.Context(), key); ok {
				if i := bytes.Index(stored, cacheSeparator); i >= 0 {
					w.Header().Set("Content-Type", string(stored[:i]))
					w.Write(stored[i+len(cacheSeparator):])
					return
				}
				// Unparseable entry; fall through and regenerate.
			}

			rec := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK && rec.body.Len() > 0 {
				ct := rec.Header().Get("Content-Type")
				entry := append([]byte(ct), cacheSeparator...)
				entry = append(entry, rec.body.Bytes()...)
				pc.Set(r.Context(), key, entry)
			}
		})
	}
}

// captureWriter tees the response body while passing it through.
type captureWriter struct {
	http.ResponseWriter
	status  int
	written bool
	body    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	if !cw.written {
		cw.status = code
		cw.written = true
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.written {
		cw.status = http.StatusOK
		cw.written = true
	}
	if cw.status == http.StatusOK {
		cw.body.Write(b)
	}
	return cw.ResponseWriter.Write(b)
}
