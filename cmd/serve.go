package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/httpserver"
	"go.dedis.ch/sssrecover/storage"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP front end on addr until SIGINT or SIGTERM.
func Serve(addr string, opts Options) error {
	conf, err := opts.Configuration()
	if err != nil {
		return err
	}

	server, err := httpserver.New(conf, storage.NewMemoryStore())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	errs := make(chan error, 1)
	go func() {
		conf.Logger.Info().Msgf("listening on %s", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if xerrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return xerrors.Errorf("server stopped: %v", err)
	case <-c:
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
