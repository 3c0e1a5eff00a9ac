// Package entry contains income and expenditure use cases.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// ListEntriesInput represents the input for listing a month of entries.
type ListEntriesInput struct {
	UserID uuid.UUID
	Kind   entity.EntryKind
	Month  valueobject.MonthRange
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*EntryOutput
	Total   int64
}

// ListEntriesUseCase handles entry listing logic.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute lists the user's entries dated inside the month, oldest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.FindByUserInRange(ctx, input.Kind, input.UserID, input.Month.Start, input.Month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	output := &ListEntriesOutput{
		Entries: make([]*EntryOutput, 0, len(entries)),
	}
	for _, e := range entries {
		output.Entries = append(output.Entries, toEntryOutput(e))
		output.Total += e.Amount
	}
	return output, nil
}
