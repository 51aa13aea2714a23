package handlers

import (
	"net/http"

	_ "github.com/codematch/marketplace/docs"
	authhandlers "github.com/codematch/marketplace/internal/handlers/auth"
	billinghandlers "github.com/codematch/marketplace/internal/handlers/billing"
	electionhandlers "github.com/codematch/marketplace/internal/handlers/election"
	wallethandlers "github.com/codematch/marketplace/internal/handlers/wallets"
	"github.com/codematch/marketplace/internal/service"
	"github.com/codematch/marketplace/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BillingHandler interface {
	GetInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoices(w http.ResponseWriter, r *http.Request)
	AddTask(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	CreateWallet(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Available(w http.ResponseWriter, r *http.Request)
	AttachPaymentMethod(w http.ResponseWriter, r *http.Request)
	CreateSetupHandle(w http.ResponseWriter, r *http.Request)
	AddPayoutMethod(w http.ResponseWriter, r *http.Request)
	GetPayoutMethods(w http.ResponseWriter, r *http.Request)
}

type ElectionHandler interface {
	Elect(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BillingHandler  BillingHandler
	WalletHandler   WalletHandler
	ElectionHandler ElectionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BillingHandler:  billinghandlers.New(s.InvoiceService, s.SettlementService),
		WalletHandler:   wallethandlers.New(s.WalletService),
		ElectionHandler: electionhandlers.New(s.ElectionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/contributor/register", h.AuthHandler.Register)
		r.Post("/contributor/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.BillingHandler.GetInvoices)
				r.Post("/tasks", h.BillingHandler.AddTask)
				r.Get("/{id}", h.BillingHandler.GetInvoice)
				r.Get("/{id}/payments", h.BillingHandler.GetPayments)
			})
			r.Post("/payments", h.BillingHandler.Pay)
			r.Route("/wallets", func(r chi.Router) {
				r.Post("/", h.WalletHandler.CreateWallet)
				r.Get("/available", h.WalletHandler.Available)
				r.Post("/{id}/activate", h.WalletHandler.Activate)
				r.Post("/{id}/payment-methods", h.WalletHandler.AttachPaymentMethod)
				r.Post("/{id}/setup", h.WalletHandler.CreateSetupHandle)
			})
			r.Route("/contributor/payout-methods", func(r chi.Router) {
				r.Post("/", h.WalletHandler.AddPayoutMethod)
				r.Get("/", h.WalletHandler.GetPayoutMethods)
			})
			r.Post("/election", h.ElectionHandler.Elect)
		})
	})

	return r
}
