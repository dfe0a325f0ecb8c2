package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SchmidtDSE/montreal-protocol/handler"
	"github.com/SchmidtDSE/montreal-protocol/pkg/config"
	"github.com/SchmidtDSE/montreal-protocol/pkg/logger"
	"github.com/SchmidtDSE/montreal-protocol/pkg/mailer"
)

// devConfig wires the local harness. Values come from the environment or a
// .env file in the working directory; every field has a usable default so
// the harness runs with no setup.
type devConfig struct {
	Addr    string `env:"HELP_RELAY_DEV_ADDR" envDefault:":8080"`
	Outbox  string `env:"HELP_RELAY_DEV_OUTBOX" envDefault:"./outbox"`
	From    string `env:"HELP_EMAIL_FROM" envDefault:"helpbot@localhost"`
	To      string `env:"HELP_EMAIL_TO" envDefault:"support@localhost"`
	Subject string `env:"HELP_EMAIL_SUBJECT" envDefault:"Help Request (dev)"`
}

func main() {
	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
		logger.WithAttr(slog.String("service", "helprelay-dev")),
	)

	var cfg devConfig
	if err := config.Load(&cfg); err != nil {
		log.Error("failed to load dev config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	envelope := func(context.Context) (mailer.Envelope, error) {
		return mailer.Envelope{From: cfg.From, To: cfg.To, Subject: cfg.Subject}, nil
	}
	h := handler.New(mailer.NewDevSender(cfg.Outbox), envelope,
		handler.WithLogger(log),
		handler.WithCORS(),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/help", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		resp, err := h.HandleRequest(req.Context(), events.APIGatewayProxyRequest{Body: string(body)})
		if err != nil {
			// Propagation policy is off for the dev harness, so this only
			// happens if the handler was reconfigured.
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	})

	log.Info("dev relay listening", slog.String("addr", cfg.Addr), slog.String("outbox", cfg.Outbox))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
