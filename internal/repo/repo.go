package repo

import (
	"github.com/codematch/marketplace/internal/pg"
	contractrepo "github.com/codematch/marketplace/internal/repo/contract-repo"
	contributorrepo "github.com/codematch/marketplace/internal/repo/contributor-repo"
	invoicerepo "github.com/codematch/marketplace/internal/repo/invoice-repo"
	paymentrepo "github.com/codematch/marketplace/internal/repo/payment-repo"
	taskrepo "github.com/codematch/marketplace/internal/repo/task-repo"
	walletrepo "github.com/codematch/marketplace/internal/repo/wallet-repo"
)

// Repositories aggregates the per-aggregate repos. Fields are concrete:
// each repo satisfies several service-local interfaces.
type Repositories struct {
	ContributorRepo *contributorrepo.Repository
	ContractRepo    *contractrepo.Repository
	TaskRepo        *taskrepo.Repository
	InvoiceRepo     *invoicerepo.Repository
	PaymentRepo     *paymentrepo.Repository
	WalletRepo      *walletrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ContributorRepo: contributorrepo.New(conn),
		ContractRepo:    contractrepo.New(conn),
		TaskRepo:        taskrepo.New(conn),
		InvoiceRepo:     invoicerepo.New(conn, txManager),
		PaymentRepo:     paymentrepo.New(conn),
		WalletRepo:      walletrepo.New(conn, txManager),
	}
}
