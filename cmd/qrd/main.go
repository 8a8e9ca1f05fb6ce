// Command qrd serves QR codes over HTTP.
//
//	GET /qr?text=...[&scale=8][&border=4][&mask=0][&format=png]
//	        [&charset=latin1][&nfc=1]
//	GET /metrics
//	GET /healthz
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pborman/getopt/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	addr := getopt.StringLong("listen", 'l', ":8080", "listen address",
		"addr")
	debug := getopt.BoolLong("debug", 'd', "log every request")
	help := getopt.BoolLong("help", 'h', "show this help")
	getopt.Parse()
	if *help {
		getopt.PrintUsage(os.Stdout)
		return
	}
	if getopt.NArgs() != 0 {
		getopt.Usage()
		os.Exit(2)
	}

	cfg := zap.NewProductionConfig()
	if *debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	srv := &http.Server{
		Addr:              *addr,
		Handler:           newServer(log, reg),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(),
			5*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	log.Info("listening", zap.String("addr", *addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("serve", zap.Error(err))
	}
	log.Info("stopped")
}
