// Command regform runs a demo conference-registration form backed by the
// formval engine: full-form validation on submit, real-time field validation
// on blur, feedback streamed back as DataStar element patches.
package main

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formval/i18n"
	"github.com/dmitrymomot/formval/schema"
	"github.com/dmitrymomot/formval/webform"
)

//go:embed form.yaml
var formYAML []byte

//go:embed register.html
var pageHTML string

type config struct {
	Addr            string        `env:"REGFORM_ADDR" envDefault:":8080"`
	Env             string        `env:"REGFORM_ENV" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"REGFORM_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	log := newLogger(cfg.Env)
	slog.SetDefault(log)

	form, err := schema.Parse(bytes.NewReader(formYAML))
	if err != nil {
		return fmt.Errorf("parse form definition: %w", err)
	}

	handler, err := webform.New(form,
		webform.WithLogger(log),
		webform.WithCatalog(newCatalog()),
	)
	if err != nil {
		return fmt.Errorf("build form handler: %w", err)
	}

	page, err := template.New("register").Parse(pageHTML)
	if err != nil {
		return fmt.Errorf("parse page template: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, map[string]any{"Title": "Conference Registration"}); err != nil {
			log.Error("render page", slog.Any("error", err))
		}
	})
	r.Mount("/register", handler.Router())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.Addr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// newLogger follows the usual split: human-readable debug logs while
// developing, JSON at info level everywhere else.
func newLogger(envName string) *slog.Logger {
	if envName == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// newCatalog registers the demo's translated messages. English templates are
// omitted on purpose: the schema's own messages are already English and serve
// as the fallback.
func newCatalog() *i18n.Catalog {
	cat := i18n.New(language.English)
	cat.Add(language.Spanish, map[string]string{
		"validation.required":     "El campo {{field}} es obligatorio",
		"validation.min_length":   "El campo {{field}} debe tener al menos {{min}} caracteres",
		"validation.email":        "El campo {{field}} debe ser un correo válido",
		"validation.one_at_sign":  "El campo {{field}} debe contener exactamente un símbolo @",
		"validation.credit_card":  "El número de tarjeta debe tener entre 13 y 16 dígitos",
		"validation.luhn":         "El número de tarjeta no es válido",
		"validation.zip_code":     "El código postal debe tener 5 dígitos",
		"validation.cvv":          "El CVV debe tener 3 dígitos",
		"validation.min_selected": "Seleccione al menos {{min}} actividad",
		"validation.one_of":       "Seleccione un método de pago",
		"validation.pattern":      "El campo {{field}} tiene un formato inválido",
	})
	return cat
}
