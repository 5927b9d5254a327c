package investors

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkravtsov/investra-backend/internal/ledger"
	"github.com/mkravtsov/investra-backend/pkg/db/models"
	dbtypes "github.com/mkravtsov/investra-backend/pkg/db/types"
	pkgerrors "github.com/mkravtsov/investra-backend/pkg/errors"
	"github.com/mkravtsov/investra-backend/pkg/logger"
	"github.com/mkravtsov/investra-backend/pkg/metrics"
	"github.com/mkravtsov/investra-backend/pkg/validators"
)

// Service defines the operations a consumer performs against investors and
// their ledger. Reads fold the stored entries through the valuation engine on
// every call; nothing derived is ever stored.
type Service interface {
	CreateInvestor(ctx context.Context) (*models.Investor, error)
	GetInvestor(ctx context.Context, id uuid.UUID) (models.Investor, error)
	ListInvestors(ctx context.Context) ([]models.Investor, error)
	RenameInvestor(ctx context.Context, id uuid.UUID, fullName string) error
	SetInvestedAmount(ctx context.Context, id uuid.UUID, amountCents int64) error
	DeleteInvestor(ctx context.Context, id uuid.UUID) error

	RecordEntry(ctx context.Context, input RecordEntryInput) (*models.LedgerEntry, error)
	Snapshot(ctx context.Context, id uuid.UUID) (models.Investor, []models.LedgerEntry, error)
	Valuation(ctx context.Context, id uuid.UUID) (ledger.Valuation, error)
	DraftPayout(ctx context.Context, id uuid.UUID, percent float64) (int64, error)
}

type service struct {
	repo    Repository
	logg    *logger.Logger
	metrics *metrics.LedgerMetrics
}

// RecordEntryInput carries one ledger entry append in the external wire shape:
// classification as flags, amount possibly signed. Legacy clients sent
// withdrawals as negative amounts; the service normalizes to the internal
// unsigned-magnitude convention before anything else sees the entry.
type RecordEntryInput struct {
	InvestorID          uuid.UUID `json:"investor_id" validate:"required"`
	Period              string    `json:"period" validate:"required"`
	AmountCents         int64     `json:"amount_cents"`
	Reinvest            bool      `json:"reinvest"`
	IsWithdrawalCapital bool      `json:"is_withdrawal_capital"`
	IsWithdrawalProfit  bool      `json:"is_withdrawal_profit"`
	IsTopup             bool      `json:"is_topup"`
}

// NewService wires an investor service with the provided repository.
func NewService(repo Repository, logg *logger.Logger, m *metrics.LedgerMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("investor repository required")
	}
	return &service{repo: repo, logg: logg, metrics: m}, nil
}

func (s *service) CreateInvestor(ctx context.Context) (*models.Investor, error) {
	investor := &models.Investor{
		ID:       uuid.New(),
		FullName: models.PlaceholderFullName,
	}
	if err := s.repo.CreateInvestor(ctx, investor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating investor")
	}
	s.info(ctx, investor.ID, "investor created")
	return investor, nil
}

func (s *service) GetInvestor(ctx context.Context, id uuid.UUID) (models.Investor, error) {
	if id == uuid.Nil {
		return models.Investor{}, pkgerrors.New(pkgerrors.CodeMissingInput, "investor id is required")
	}
	return s.repo.GetInvestor(ctx, id)
}

func (s *service) ListInvestors(ctx context.Context) ([]models.Investor, error) {
	return s.repo.ListInvestors(ctx)
}

func (s *service) RenameInvestor(ctx context.Context, id uuid.UUID, fullName string) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeMissingInput, "investor id is required")
	}
	if err := s.repo.UpdateFullName(ctx, id, fullName); err != nil {
		return err
	}
	s.info(ctx, id, "investor renamed")
	return nil
}

func (s *service) SetInvestedAmount(ctx context.Context, id uuid.UUID, amountCents int64) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeMissingInput, "investor id is required")
	}
	if amountCents < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "base contribution must be non-negative").
			WithDetails(map[string]any{"amount_cents": amountCents})
	}
	if err := s.repo.UpdateInvestedAmount(ctx, id, amountCents); err != nil {
		return err
	}
	s.info(ctx, id, "base contribution updated")
	return nil
}

func (s *service) DeleteInvestor(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeMissingInput, "investor id is required")
	}
	if err := s.repo.DeleteInvestor(ctx, id); err != nil {
		return err
	}
	s.info(ctx, id, "investor deleted with its ledger")
	return nil
}

func (s *service) RecordEntry(ctx context.Context, input RecordEntryInput) (*models.LedgerEntry, error) {
	if err := validators.ValidateStruct(input); err != nil {
		return nil, err
	}

	period, err := dbtypes.ParsePeriod(input.Period)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed period").
			WithDetails(map[string]any{"period": input.Period})
	}

	amount, err := normalizeAmount(input)
	if err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		InvestorID:          input.InvestorID,
		PeriodMonth:         period,
		AmountCents:         amount,
		Reinvest:            input.Reinvest,
		IsWithdrawalCapital: input.IsWithdrawalCapital,
		IsWithdrawalProfit:  input.IsWithdrawalProfit,
		IsTopup:             input.IsTopup,
	}
	if err := ledger.ValidateEntry(*entry); err != nil {
		return nil, err
	}

	// The owning investor must resolve before anything is written.
	if _, err := s.repo.GetInvestor(ctx, input.InvestorID); err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "entry references an unknown investor").
				WithDetails(map[string]any{"investor_id": input.InvestorID})
		}
		return nil, err
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		// The investor can vanish between the check above and the insert; the
		// repo reports that as a validation failure, not a dependency fault.
		if pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "appending ledger entry")
	}

	kind := ledger.Classify(*entry)
	s.metrics.IncEntryRecorded(string(kind))
	if s.logg != nil {
		lctx := s.logg.WithInvestorID(ctx, entry.InvestorID.String())
		lctx = s.logg.WithEntryID(lctx, entry.ID)
		lctx = s.logg.WithPeriod(lctx, entry.PeriodMonth.String())
		s.logg.Info(lctx, "ledger entry recorded")
	}
	return entry, nil
}

func (s *service) Snapshot(ctx context.Context, id uuid.UUID) (models.Investor, []models.LedgerEntry, error) {
	if id == uuid.Nil {
		return models.Investor{}, nil, pkgerrors.New(pkgerrors.CodeMissingInput, "investor id is required")
	}
	return s.repo.Snapshot(ctx, id)
}

func (s *service) Valuation(ctx context.Context, id uuid.UUID) (ledger.Valuation, error) {
	investor, entries, err := s.Snapshot(ctx, id)
	if err != nil {
		return ledger.Valuation{}, err
	}

	started := time.Now()
	valuation := ledger.Valuate(investor, entries)
	s.metrics.ObserveValuation(time.Since(started))
	return valuation, nil
}

func (s *service) DraftPayout(ctx context.Context, id uuid.UUID, percent float64) (int64, error) {
	valuation, err := s.Valuation(ctx, id)
	if err != nil {
		return 0, err
	}
	return ledger.DraftPayout(valuation.CapitalNowCents, percent), nil
}

// normalizeAmount converts a possibly signed wire amount to the stored
// magnitude. A negative amount is only meaningful on withdrawals, where legacy
// clients encoded direction in the sign.
func normalizeAmount(input RecordEntryInput) (int64, error) {
	if input.AmountCents >= 0 {
		return input.AmountCents, nil
	}
	if input.IsWithdrawalCapital || input.IsWithdrawalProfit {
		return -input.AmountCents, nil
	}
	return 0, pkgerrors.New(pkgerrors.CodeValidation, "negative amount is only valid on withdrawal entries").
		WithDetails(map[string]any{"amount_cents": input.AmountCents})
}

func (s *service) info(ctx context.Context, id uuid.UUID, msg string) {
	if s.logg == nil {
		return
	}
	s.logg.Info(s.logg.WithInvestorID(ctx, id.String()), msg)
}
