package electionservice

import (
	"context"
	"errors"
	"math/rand"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TaskRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Task, error)
	UpdateAssignee(ctx context.Context, taskID, contractID int, username string) error
}

type ContractRepo interface {
	FindCandidatesByProjectID(ctx context.Context, projectID int) ([]domain.Candidate, error)
}

type WalletRepo interface {
	FindActiveByProjectID(ctx context.Context, projectID int) (*domain.Wallet, error)
}

type InvoiceRepo interface {
	SumUnpaidByProjectID(ctx context.Context, projectID int) (decimal.Decimal, error)
}

var ErrTaskNotFound = errors.New("task not found")

// Service elects a contributor for an unassigned or reassigned task:
// anyone holding a contract on the task's project under the right role,
// except the current assignee, whose projected cost fits the wallet's
// uncommitted funds. The tie-break among affordable candidates is uniform
// random; the source is injected so tests can seed it.
type Service struct {
	taskRepo          TaskRepo
	contractRepo      ContractRepo
	walletRepo        WalletRepo
	invoiceRepo       InvoiceRepo
	rnd               *rand.Rand
	projectFeePct     decimal.Decimal
	contributorFeePct decimal.Decimal
}

func New(taskRepo TaskRepo, contractRepo ContractRepo, walletRepo WalletRepo, invoiceRepo InvoiceRepo, rnd *rand.Rand, projectFeePct, contributorFeePct int64) *Service {
	return &Service{
		taskRepo:          taskRepo,
		contractRepo:      contractRepo,
		walletRepo:        walletRepo,
		invoiceRepo:       invoiceRepo,
		rnd:               rnd,
		projectFeePct:     decimal.NewFromInt(projectFeePct),
		contributorFeePct: decimal.NewFromInt(contributorFeePct),
	}
}

// Elect picks a contributor for the task and assigns it. Returns nil when
// nobody eligible can be afforded.
func (s *Service) Elect(ctx context.Context, taskID int) (*domain.Contributor, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	candidates, err := s.contractRepo.FindCandidatesByProjectID(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}

	eligible := make([]domain.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if !cand.Contract.Role.Matches(task.Role) {
			continue
		}
		if cand.Contributor.Username == task.AssigneeUsername {
			continue
		}
		eligible = append(eligible, cand)
	}
	if len(eligible) == 0 {
		zap.L().Info("no eligible candidates for task", zap.Int("task_id", taskID))
		return nil, nil
	}

	available, err := s.available(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}

	affordable := make([]domain.Candidate, 0, len(eligible))
	for _, cand := range eligible {
		if s.cost(cand.Contract, task).LessThanOrEqual(available) {
			affordable = append(affordable, cand)
		}
	}
	if len(affordable) == 0 {
		zap.L().Info("no affordable candidates for task",
			zap.Int("task_id", taskID), zap.String("available", available.String()))
		return nil, nil
	}

	winner := affordable[s.rnd.Intn(len(affordable))]
	err = s.taskRepo.UpdateAssignee(ctx, task.ID, winner.Contract.ID, winner.Contributor.Username)
	if err != nil {
		zap.L().Error("failed to assign task to elected contributor", zap.Error(err))
		return nil, err
	}

	zap.L().Info("contributor elected",
		zap.Int("task_id", taskID), zap.String("username", winner.Contributor.Username))
	return &winner.Contributor, nil
}

// available is the wallet's cash minus the totals of every open invoice on
// the project, i.e. what is not yet committed to pending work.
func (s *Service) available(ctx context.Context, projectID int) (decimal.Decimal, error) {
	wallet, err := s.walletRepo.FindActiveByProjectID(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	if wallet == nil {
		return decimal.Zero, nil
	}
	committed, err := s.invoiceRepo.SumUnpaidByProjectID(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Cash.Sub(committed), nil
}

// cost projects what taking the task would add to the project's bill:
// labor at the contract rate plus both platform fees.
func (s *Service) cost(contract domain.Contract, task *domain.Task) decimal.Decimal {
	labor := contract.HourlyRate.Mul(decimal.NewFromInt(int64(task.EstimationMinutes))).
		Div(decimal.NewFromInt(60)).Round(0)
	projectFee := labor.Mul(s.projectFeePct).Div(decimal.NewFromInt(100)).Round(0)
	contributorFee := labor.Mul(s.contributorFeePct).Div(decimal.NewFromInt(100)).Round(0)
	return labor.Add(projectFee).Add(contributorFee)
}
