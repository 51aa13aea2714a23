package invoicerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindActiveByContractID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name       string
		contractID int
		mockSetup  func()
		expectErr  bool
		result     *domain.Invoice
	}{
		{
			name:       "Open invoice exists",
			contractID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "contract_id", "paid", "total", "created_at"}).
					AddRow(1, 7, false, decimal.NewFromInt(4950), timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE contract_id = $1 AND NOT paid")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Invoice{
				ID:         1,
				ContractID: 7,
				Paid:       false,
				Total:      decimal.NewFromInt(4950),
				CreatedAt:  timeNow,
			},
		},
		{
			name:       "Everything settled",
			contractID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE contract_id = $1 AND NOT paid")).
					WithArgs(7).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:       "Database error",
			contractID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE contract_id = $1 AND NOT paid")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActiveByContractID(context.Background(), tt.contractID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name       string
		contractID int
		mockSetup  func()
		expectErr  bool
	}{
		{
			name:       "Creates an empty invoice",
			contractID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "contract_id", "paid", "total", "created_at"}).
					AddRow(1, 7, false, decimal.Zero, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invoices (contract_id, paid, total)")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name:       "Database error",
			contractID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invoices (contract_id, paid, total)")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.contractID)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, 7, result.ContractID)
				assert.False(t, result.Paid)
			}
		})
	}
}

func TestRepository_AddTask(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()
	value := decimal.NewFromInt(4500)
	commission := decimal.NewFromInt(450)

	tests := []struct {
		name      string
		task      *domain.InvoicedTask
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Appends the task and bumps the total",
			task: &domain.InvoicedTask{
				InvoiceID:  1,
				TaskID:     42,
				TimeSpent:  90,
				Value:      value,
				Commission: commission,
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, timeNow)
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invoiced_tasks (invoice_id, task_id, time_spent_minutes, value, commission)")).
						WithArgs(1, 42, 90, value, commission).
						WillReturnRows(rows)
					mock.ExpectExec(regexp.QuoteMeta("SET total = total + $1")).
						WithArgs(value.Add(commission), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Insert fails",
			task: &domain.InvoicedTask{
				InvoiceID:  1,
				TaskID:     42,
				TimeSpent:  90,
				Value:      value,
				Commission: commission,
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invoiced_tasks (invoice_id, task_id, time_spent_minutes, value, commission)")).
						WithArgs(1, 42, 90, value, commission).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Total update fails",
			task: &domain.InvoicedTask{
				InvoiceID:  1,
				TaskID:     42,
				TimeSpent:  90,
				Value:      value,
				Commission: commission,
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, timeNow)
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invoiced_tasks (invoice_id, task_id, time_spent_minutes, value, commission)")).
						WithArgs(1, 42, 90, value, commission).
						WillReturnRows(rows)
					mock.ExpectExec(regexp.QuoteMeta("SET total = total + $1")).
						WithArgs(value.Add(commission), 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.AddTask(context.Background(), tt.task)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, result.ID)
				assert.Equal(t, timeNow, result.CreatedAt)
			}
		})
	}
}

func TestRepository_IsTaskInvoiced(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name: "Task already invoiced",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE i.contract_id = $1 AND t.task_id = $2")).
					WithArgs(7, 42).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    true,
		},
		{
			name: "Task not invoiced yet",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"exists"}).AddRow(false)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE i.contract_id = $1 AND t.task_id = $2")).
					WithArgs(7, 42).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE i.contract_id = $1 AND t.task_id = $2")).
					WithArgs(7, 42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.IsTaskInvoiced(context.Background(), 7, 42)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_SumUnpaidByProjectID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    decimal.Decimal
	}{
		{
			name: "Sums open invoices",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromInt(55000))
				mock.ExpectQuery(regexp.QuoteMeta("WHERE c.project_id = $1 AND NOT i.paid")).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    decimal.NewFromInt(55000),
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE c.project_id = $1 AND NOT i.paid")).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.SumUnpaidByProjectID(context.Background(), 3)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, tt.result.Equal(result))
		})
	}
}

func TestRepository_MarkPaidWithPlatformInvoice(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()
	commission := decimal.NewFromInt(1000)
	vat := decimal.NewFromInt(190)
	rate := decimal.RequireFromString("4.9750")

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedErr error
	}{
		{
			name: "Closes the invoice and records the platform invoice",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("SET paid = TRUE")).
						WithArgs(1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(9, timeNow)
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO platform_invoices (invoice_id, commission, vat, exchange_rate)")).
						WithArgs(1, commission, vat, rate).
						WillReturnRows(rows)
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Invoice was settled concurrently",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("SET paid = TRUE")).
						WithArgs(1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			expectErr:   true,
			expectedErr: ErrAlreadySettled,
		},
		{
			name: "Platform invoice insert fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("SET paid = TRUE")).
						WithArgs(1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO platform_invoices (invoice_id, commission, vat, exchange_rate)")).
						WithArgs(1, commission, vat, rate).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			platform := &domain.PlatformInvoice{
				InvoiceID:    1,
				Commission:   commission,
				VAT:          vat,
				ExchangeRate: rate,
			}
			err := repo.MarkPaidWithPlatformInvoice(context.Background(), 1, platform)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 9, platform.ID)
				assert.Equal(t, timeNow, platform.CreatedAt)
			}
		})
	}
}

func TestRepository_FindPayable(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()
	minTotal := decimal.NewFromInt(10800)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Invoice
	}{
		{
			name: "Payable invoices found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "contract_id", "paid", "total", "created_at"}).
					AddRow(1, 7, false, decimal.NewFromInt(12000), timeNow).
					AddRow(2, 8, false, decimal.NewFromInt(20000), timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE NOT paid AND total >= $1")).
					WithArgs(minTotal, uint32(2)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Invoice{
				{ID: 1, ContractID: 7, Paid: false, Total: decimal.NewFromInt(12000), CreatedAt: timeNow},
				{ID: 2, ContractID: 8, Paid: false, Total: decimal.NewFromInt(20000), CreatedAt: timeNow},
			},
		},
		{
			name: "Nothing above the minimum",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "contract_id", "paid", "total", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta("WHERE NOT paid AND total >= $1")).
					WithArgs(minTotal, uint32(2)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE NOT paid AND total >= $1")).
					WithArgs(minTotal, uint32(2)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name: "Error scanning row",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "contract_id", "paid", "total", "created_at"}).
					AddRow(1, 7, false, "invalid_value", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE NOT paid AND total >= $1")).
					WithArgs(minTotal, uint32(2)).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPayable(context.Background(), minTotal, 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
