package main

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/unixdj/qrm"
	"github.com/unixdj/qrm/coding"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Limits on request parameters.
const (
	maxScale  = 64
	maxBorder = 16
)

type server struct {
	log      *zap.Logger
	router   *httprouter.Router
	requests *prometheus.CounterVec
	versions prometheus.Histogram
	seconds  prometheus.Histogram
}

// newServer returns a server registering its metrics with reg.
func newServer(log *zap.Logger, reg *prometheus.Registry) *server {
	s := &server{
		log:    log,
		router: httprouter.New(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "qrd",
				Name:      "encode_requests_total",
				Help:      "Number of encode requests.",
			}, []string{"result"}),
		versions: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "qrd",
				Name:      "encode_version",
				Help:      "QR version of encoded codes.",
				Buckets:   prometheus.LinearBuckets(5, 5, 8),
			}),
		seconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "qrd",
				Name:      "encode_seconds",
				Help:      "Time spent encoding and rendering.",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 8),
			}),
	}
	reg.MustRegister(s.requests, s.versions, s.seconds)

	s.router.GET("/qr", s.getQR)
	s.router.GET("/healthz", s.getHealth)
	s.router.Handler(http.MethodGet, "/metrics",
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	s.router.ServeHTTP(rw, r)
	s.log.Debug("request",
		zap.String("method", r.Method),
		zap.String("uri", r.URL.RequestURI()),
		zap.Int("status", rw.status),
		zap.Duration("duration", time.Since(start)))
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *server) getHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// intParam returns the integer query parameter name, or def if it is
// absent.  Values outside [lo, hi] are errors.
func intParam(r *http.Request, name string, def, lo, hi int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		return 0, errors.New("bad " + name + ": " + strconv.Quote(v))
	}
	return n, nil
}

// request holds the parameters of an encode request.
type request struct {
	data   []byte
	scale  int
	border int
	mask   coding.Mask
	format string
}

func parseRequest(r *http.Request) (*request, error) {
	q := r.URL.Query()
	req := &request{format: q.Get("format")}
	var err error
	if req.scale, err = intParam(r, "scale", qr.DefaultScale, 1, maxScale); err != nil {
		return nil, err
	}
	if req.border, err = intParam(r, "border", qr.DefaultBorder, 0, maxBorder); err != nil {
		return nil, err
	}
	mask, err := intParam(r, "mask", int(coding.DefaultMask), 0, 7)
	if err != nil {
		return nil, err
	}
	req.mask = coding.Mask(mask)

	text := q.Get("text")
	if q.Get("nfc") != "" {
		text = norm.NFC.String(text)
	}
	switch cs := q.Get("charset"); cs {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1":
		if text, err = charmap.ISO8859_1.NewEncoder().String(text); err != nil {
			return nil, errors.New("text not representable in Latin-1")
		}
	default:
		return nil, errors.New("bad charset: " + strconv.Quote(cs))
	}
	req.data = []byte(text)

	switch req.format {
	case "":
		req.format = "png"
	case "png", "pbm", "utf8", "ascii":
	default:
		return nil, errors.New("bad format: " + strconv.Quote(req.format))
	}
	return req, nil
}

var contentTypes = map[string]string{
	"png":   "image/png",
	"pbm":   "image/x-portable-bitmap",
	"utf8":  "text/plain; charset=utf-8",
	"ascii": "text/plain; charset=us-ascii",
}

func (s *server) getQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, err := parseRequest(r)
	if err != nil {
		s.requests.WithLabelValues("bad_request").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	c, err := qr.EncodeMask(req.data, req.mask)
	if errors.Is(err, qr.ErrCapacity) {
		s.requests.WithLabelValues("too_long").Inc()
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	} else if err != nil {
		s.requests.WithLabelValues("error").Inc()
		s.log.Error("encode failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	c.Scale, c.Border = req.scale, req.border

	var b bytes.Buffer
	switch req.format {
	case "png":
		err = c.EncodePNG(&b)
	case "pbm":
		err = c.EncodePBM(&b)
	case "utf8":
		_, err = b.WriteString(c.String())
	case "ascii":
		err = c.EncodeASCII(&b)
	}
	if err != nil {
		s.requests.WithLabelValues("error").Inc()
		s.log.Error("render failed", zap.Error(err),
			zap.String("format", req.format))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.seconds.Observe(time.Since(start).Seconds())
	s.versions.Observe(float64(c.Version))
	s.requests.WithLabelValues("ok").Inc()

	w.Header().Set("Content-Type", contentTypes[req.format])
	w.Header().Set("Content-Length", strconv.Itoa(b.Len()))
	w.Header().Set("X-QR-Version", c.Version.String())
	b.WriteTo(w)
}
