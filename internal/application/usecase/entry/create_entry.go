// Package entry contains income and expenditure use cases.
package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/application/usecase/recurrence"
	"github.com/sft-api/backend/internal/domain/entity"
)

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	UserID   uuid.UUID
	Kind     entity.EntryKind
	Title    string
	Amount   int64
	Date     time.Time
	Repeated entity.RepeatFrequency
	Type     *entity.ExpenditureType // Expenditure only; defaults to BILL
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry     *EntryOutput
	Generated int64 // Future occurrences materialized alongside the entry
}

// CreateEntryUseCase handles entry creation logic.
type CreateEntryUseCase struct {
	entryRepo  adapter.EntryRepository
	transactor adapter.Transactor
	generator  *recurrence.Generator
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	entryRepo adapter.EntryRepository,
	transactor adapter.Transactor,
	generator *recurrence.Generator,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo:  entryRepo,
		transactor: transactor,
		generator:  generator,
	}
}

// Execute validates and stores the entry. Weekly and monthly entries are
// expanded into their series in the same transaction.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}
	if input.Repeated == "" {
		input.Repeated = entity.RepeatNever
	}
	for _, err := range []error{
		validateTitle(input.Title),
		validateAmount(input.Amount),
		validateDate(input.Date),
		validateFrequency(input.Repeated),
		validateType(input.Type),
	} {
		if err != nil {
			return nil, err
		}
	}

	entry := entity.NewRecurringEntry(
		input.UserID,
		input.Kind,
		input.Title,
		input.Amount,
		input.Date,
		input.Repeated,
		input.Type,
	)

	var generated int64
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}

		n, err := uc.generator.Generate(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to generate series: %w", err)
		}
		generated = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	if generated > 0 {
		slog.InfoContext(ctx, "Series generated",
			"user_id", entry.UserID,
			"kind", entry.Kind,
			"repeat_group_id", entry.RepeatGroupID,
			"occurrences", generated,
		)
	}

	return &CreateEntryOutput{
		Entry:     toEntryOutput(entry),
		Generated: generated,
	}, nil
}
