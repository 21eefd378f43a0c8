package visitor

import (
	"bufio"
	"net"
	"net/http"
)

// responseWriter runs finalize exactly once, before the first byte of the
// response leaves the handler. When finalize fails, onError owns the
// response and everything the downstream handler writes is dropped.
type responseWriter struct {
	http.ResponseWriter
	finalize  func() error
	onError   func(error)
	committed bool
	failed    bool
}

func (w *responseWriter) commit() bool {
	if !w.committed {
		w.committed = true
		if err := w.finalize(); err != nil {
			w.failed = true
			w.onError(err)
		}
	}
	return !w.failed
}

func (w *responseWriter) WriteHeader(code int) {
	if w.commit() {
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.commit() {
		return 0, ErrResponseAborted
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) Flush() {
	if w.commit() {
		_ = http.NewResponseController(w.ResponseWriter).Flush()
	}
}

// Hijack hands the connection over without a cookie: the handler is taking
// responsibility for the response bytes. A failed hijack leaves the writer
// uncommitted so the cookie still goes out with the fallback response.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, buf, err := http.NewResponseController(w.ResponseWriter).Hijack()
	if err == nil {
		w.committed = true
	}
	return conn, buf, err
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
