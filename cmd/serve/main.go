package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/midbel/designer"
)

// serve renders a template live: the template and data files are re-read on
// every request, so edits show up on refresh.
type server struct {
	log      *slog.Logger
	template string
	data     string
}

func main() {
	var (
		addr     = flag.String("a", ":8080", "listening address")
		dataFile = flag.String("data", "", "data context file")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-a addr] [-data data.json] <template.json>\n", os.Args[0])
		os.Exit(2)
	}

	srv := server{
		log:      slog.New(slog.NewTextHandler(os.Stderr, nil)),
		template: flag.Arg(0),
		data:     *dataFile,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(srv.logRequests)
	r.Get("/", srv.index)
	r.Get("/page.svg", srv.page)

	srv.log.Info("listening", "addr", *addr, "template", srv.template)
	if err := http.ListenAndServe(*addr, r); err != nil {
		srv.log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func (s server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start),
		)
	})
}

func (s server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>preview</title></head>
<body style="margin:0;display:flex;justify-content:center;background:#e5e7eb">
<img src="/page.svg?preview=%s" alt="page"/>
</body>
</html>
`, r.URL.Query().Get("preview"))
}

func (s server) page(w http.ResponseWriter, r *http.Request) {
	doc, data, err := s.load()
	if err != nil {
		s.log.Error("load failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	preview := r.URL.Query().Get("preview") == "1"

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := designer.RenderPage(w, doc, preview, data); err != nil {
		s.log.Error("render failed", "err", err)
	}
}

func (s server) load() (designer.Document, map[string]any, error) {
	r, err := os.Open(s.template)
	if err != nil {
		return designer.Document{}, nil, err
	}
	defer r.Close()

	doc, err := designer.DecodeDocument(r)
	if err != nil {
		return doc, nil, err
	}
	if s.data == "" {
		return doc, nil, nil
	}
	d, err := os.Open(s.data)
	if err != nil {
		return doc, nil, err
	}
	defer d.Close()

	data, err := designer.DecodeContext(d)
	return doc, data, err
}
