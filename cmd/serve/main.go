// Command serve hosts a docs directory (pages, scripts, CSV assets) over
// plain HTTP. It replaces the container script the demos used to ship
// with.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/tabviz/chartkit/internal/config"
	"github.com/tabviz/chartkit/internal/logger"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.FromEnv("serve").Errorf("%s", err)
		os.Exit(1)
	}
	log := logger.FromEnv("serve")
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	addr := flag.String("a", cfg.Addr, "listening address")
	dir := flag.String("d", cfg.DocsDir, "directory to serve")
	flag.Parse()

	mux := http.NewServeMux()
	mux.Handle("/", logged(log, http.FileServer(http.Dir(*dir))))

	log.Infof("serving %s on %s", *dir, *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

func logged(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
