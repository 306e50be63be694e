package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unipact/internal/core/port"
)

const defaultMaxUpload = 32 << 20

// Handler is the inbound HTTP adapter. It authenticates callers, decodes
// requests, delegates to the use cases and maps their errors to statuses.
type Handler struct {
	campaigns  port.CampaignUseCase
	reputation port.ReputationUseCase
	payments   port.PaymentUseCase
	auth       *Authenticator
	logger     *slog.Logger
	maxUpload  int64
	now        func() time.Time
	router     chi.Router
}

// Options carries the optional parts of a Handler.
type Options struct {
	// Gatherer backs /metrics. Nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
	// MaxUploadBytes caps deliverable uploads. Zero means 32 MiB.
	MaxUploadBytes int64
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignUseCase,
	reputation port.ReputationUseCase,
	payments port.PaymentUseCase,
	auth *Authenticator,
	logger *slog.Logger,
	opts Options,
) *Handler {
	h := &Handler{
		campaigns:  campaigns,
		reputation: reputation,
		payments:   payments,
		auth:       auth,
		logger:     logger,
		maxUpload:  opts.MaxUploadBytes,
		now:        time.Now,
	}
	if h.maxUpload <= 0 {
		h.maxUpload = defaultMaxUpload
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.logRequests, auth.Middleware)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Post("/{id}/publish", h.handlePublishCampaign)
			r.Post("/{id}/archive", h.handleArchiveCampaign)
			r.Post("/{id}/applications", h.handleSubmitApplication)
			r.Post("/{id}/complete", h.handleCompleteCampaign)
			r.Get("/{id}/report", h.handleGetReport)
		})
		r.Route("/applications", func(r chi.Router) {
			r.Get("/mine", h.handleMyApplications)
			r.Post("/{id}/award", h.handleAwardApplication)
			r.Post("/{id}/deliverables", h.handleSubmitDeliverable)
			r.Get("/{id}/deliverables", h.handleListDeliverables)
		})
		r.Post("/reviews", h.handleRecordReview)
		r.Get("/clubs/{id}", h.handleGetClub)
		r.Post("/clubs/{id}/rank", h.handleRecomputeRank)
		r.Route("/payments", func(r chi.Router) {
			r.Post("/intents", h.handleCreatePaymentIntent)
			r.Post("/{id}/confirm", h.handleConfirmPayment)
			r.Get("/", h.handleListTransactions)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.DebugContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}
