package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is a contract role inside a project. ANY matches every task role
// during election.
type Role string

const (
	RoleDev  Role = "DEV"
	RoleQA   Role = "QA"
	RoleArch Role = "ARCH"
	RoleRev  Role = "REV"
	RoleBot  Role = "BOT"
	RolePM   Role = "PM"
	RolePO   Role = "PO"
	RoleAny  Role = "ANY"
)

// Matches reports whether a contract under role r may take a task
// requiring role other.
func (r Role) Matches(other Role) bool {
	return r == RoleAny || r == other
}

type Contributor struct {
	ID        int       `db:"id"`
	Username  string    `db:"username"`
	Provider  string    `db:"provider"`
	Password  string    `db:"password_hash"`
	CreatedAt time.Time `db:"created_at"`
}

type Project struct {
	ID       int    `db:"id"`
	RepoName string `db:"repo_name"`
	Provider string `db:"provider"`
}

// ContractID is the natural key of a contract: one contributor bound to
// one repository under one role.
type ContractID struct {
	RepoName string
	Username string
	Provider string
	Role     Role
}

type Contract struct {
	ID            int             `db:"id"`
	ProjectID     int             `db:"project_id"`
	ContributorID int             `db:"contributor_id"`
	Role          Role            `db:"role"`
	HourlyRate    decimal.Decimal `db:"hourly_rate"` // cents per hour
	CreatedAt     time.Time       `db:"created_at"`
}

type Task struct {
	ID                 int    `db:"id"`
	ProjectID          int    `db:"project_id"`
	IssueNumber        int    `db:"issue_number"`
	Role               Role   `db:"role"`
	EstimationMinutes  int    `db:"estimation_minutes"`
	AssigneeUsername   string `db:"assignee_username"`
	AssigneeContractID *int   `db:"assignee_contract_id"`
}

// Candidate is a contract joined with its contributor, as considered
// during election.
type Candidate struct {
	Contract    Contract
	Contributor Contributor
}

type Invoice struct {
	ID         int             `db:"id"`
	ContractID int             `db:"contract_id"`
	Paid       bool            `db:"paid"`
	Total      decimal.Decimal `db:"total"` // cents, sum over tasks of value+commission
	CreatedAt  time.Time       `db:"created_at"`
}

// InvoicedTask is immutable once created.
type InvoicedTask struct {
	ID         int             `db:"id"`
	InvoiceID  int             `db:"invoice_id"`
	TaskID     int             `db:"task_id"`
	TimeSpent  int             `db:"time_spent_minutes"`
	Value      decimal.Decimal `db:"value"`
	Commission decimal.Decimal `db:"commission"`
	CreatedAt  time.Time       `db:"created_at"`
}

// Amount is the task's contribution to the invoice total.
func (t InvoicedTask) Amount() decimal.Decimal {
	return t.Value.Add(t.Commission)
}

type PaymentStatus string

const (
	PaymentSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentError      PaymentStatus = "ERROR"
)

// Payment is one settlement attempt against an invoice. Rows are never
// updated; a new attempt creates a new row.
type Payment struct {
	ID            int             `db:"id"`
	InvoiceID     int             `db:"invoice_id"`
	TransactionID string          `db:"transaction_id"`
	Value         decimal.Decimal `db:"value"`
	Status        PaymentStatus   `db:"status"`
	FailReason    string          `db:"fail_reason"`
	ProcessedAt   time.Time       `db:"processed_at"`
}

type WalletKind string

const (
	WalletFake   WalletKind = "FAKE"
	WalletStripe WalletKind = "STRIPE"
)

type Wallet struct {
	ID         int             `db:"id"`
	ProjectID  int             `db:"project_id"`
	Kind       WalletKind      `db:"kind"`
	Identifier string          `db:"identifier"`
	Cash       decimal.Decimal `db:"cash"` // cents
	Active     bool            `db:"active"`
}

type PaymentMethod struct {
	ID         int    `db:"id"`
	WalletID   int    `db:"wallet_id"`
	Identifier string `db:"identifier"`
	Active     bool   `db:"active"`
}

type PayoutKind string

const (
	PayoutCard PayoutKind = "CARD"
	PayoutIBAN PayoutKind = "IBAN"
)

type PayoutMethod struct {
	ID            int        `db:"id"`
	ContributorID int        `db:"contributor_id"`
	Kind          PayoutKind `db:"kind"`
	Identifier    string     `db:"identifier"`
	Country       string     `db:"country"`
	TaxID         string     `db:"tax_id"`
	Active        bool       `db:"active"`
}

// PlatformInvoice records the commission and VAT the platform owes in its
// home currency after an invoice is settled.
type PlatformInvoice struct {
	ID           int             `db:"id"`
	InvoiceID    int             `db:"invoice_id"`
	Commission   decimal.Decimal `db:"commission"`
	VAT          decimal.Decimal `db:"vat"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	CreatedAt    time.Time       `db:"created_at"`
}

// Amount is commission plus VAT converted to the home currency.
func (p PlatformInvoice) Amount() decimal.Decimal {
	return p.Commission.Add(p.VAT).Mul(p.ExchangeRate).Round(0)
}
