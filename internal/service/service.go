package service

import (
	"math/rand"
	"time"

	"github.com/codematch/marketplace/internal/handlers/auth"
	"github.com/codematch/marketplace/internal/handlers/billing"
	"github.com/codematch/marketplace/internal/handlers/election"
	"github.com/codematch/marketplace/internal/handlers/wallets"

	pkgauth "github.com/codematch/marketplace/pkg/auth"

	"github.com/codematch/marketplace/internal/config"
	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/exchange"
	"github.com/codematch/marketplace/internal/gateway"
	"github.com/codematch/marketplace/internal/pg"
	"github.com/codematch/marketplace/internal/repo"
	authservice "github.com/codematch/marketplace/internal/service/authservice"
	electionservice "github.com/codematch/marketplace/internal/service/electionservice"
	invoiceservice "github.com/codematch/marketplace/internal/service/invoiceservice"
	settlementservice "github.com/codematch/marketplace/internal/service/settlementservice"
	walletservice "github.com/codematch/marketplace/internal/service/walletservice"
)

type Services struct {
	AuthService       auth.Service
	InvoiceService    billing.InvoiceService
	SettlementService billing.SettlementService
	WalletService     wallets.Service
	ElectionService   election.Service
}

func New(repo *repo.Repositories, cfg *config.Config, txManager pg.TXManager, rates *exchange.Source, real *gateway.Client, fake *gateway.Fake) *Services {
	invoiceService := invoiceservice.New(repo.InvoiceRepo, repo.ContractRepo, repo.ContributorRepo, repo.TaskRepo, cfg.CommissionPct)

	settlementService := settlementservice.New(
		invoiceService, repo.ContractRepo, repo.WalletRepo, repo.PaymentRepo,
		map[domain.WalletKind]settlementservice.Gateway{
			domain.WalletStripe: real,
			domain.WalletFake:   fake,
		},
		rates, txManager, cfg.MinPayment,
	)

	walletService := walletservice.New(repo.WalletRepo, repo.InvoiceRepo,
		map[domain.WalletKind]walletservice.SetupGateway{
			domain.WalletStripe: real,
			domain.WalletFake:   fake,
		},
	)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	electionService := electionservice.New(repo.TaskRepo, repo.ContractRepo, repo.WalletRepo, repo.InvoiceRepo,
		rnd, cfg.ProjectFeePct, cfg.ContributorFeePct)

	authService := authservice.New(repo.ContributorRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		InvoiceService:    invoiceService,
		SettlementService: settlementService,
		WalletService:     walletService,
		ElectionService:   electionService,
	}
}
