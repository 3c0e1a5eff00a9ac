package recurrence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// UpdateCase names the branch taken by OnUpdate.
type UpdateCase string

const (
	// UpdatePropagate copies the edit onto later occurrences under a new group.
	UpdatePropagate UpdateCase = "propagate"
	// UpdateRegenerate rebuilds the series from the edited occurrence.
	UpdateRegenerate UpdateCase = "regenerate"
	// UpdateDetach stops the series at the edited occurrence.
	UpdateDetach UpdateCase = "detach"
	// UpdateStart turns a single entry into a new series.
	UpdateStart UpdateCase = "start"
	// UpdateSingle touches only the edited row.
	UpdateSingle UpdateCase = "single"
)

// Coordinator keeps a series consistent when one of its occurrences is
// edited or deleted. Occurrences dated before the edited one are never touched.
type Coordinator struct {
	entryRepo adapter.EntryRepository
	generator *Generator
}

// NewCoordinator creates a new Coordinator instance.
func NewCoordinator(entryRepo adapter.EntryRepository, generator *Generator) *Coordinator {
	return &Coordinator{
		entryRepo: entryRepo,
		generator: generator,
	}
}

// OnDelete removes instance and, when it belongs to a series, every later
// occurrence of that series. Returns the number of rows deleted.
func (c *Coordinator) OnDelete(ctx context.Context, instance *entity.RecurringEntry) (int64, error) {
	if instance.IsInSeries() {
		deleted, err := c.entryRepo.DeleteSeriesFrom(
			ctx, instance.Kind, instance.UserID, *instance.RepeatGroupID, instance.Date, nil,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to delete series tail: %w", err)
		}
		return deleted, nil
	}

	if err := c.entryRepo.Delete(ctx, instance.Kind, instance.ID); err != nil {
		return 0, fmt.Errorf("failed to delete entry: %w", err)
	}
	return 1, nil
}

// OnUpdate reconciles the series after updated has been saved over original.
// original must be a snapshot taken before the save.
func (c *Coordinator) OnUpdate(ctx context.Context, original, updated *entity.RecurringEntry) (UpdateCase, error) {
	switch {
	case original.IsInSeries() && updated.Repeated.IsSeries():
		if valueobject.SameDay(updated.Date, original.Date) && updated.Repeated == original.Repeated {
			return UpdatePropagate, c.propagate(ctx, original, updated)
		}
		return UpdateRegenerate, c.regenerate(ctx, original, updated)

	case original.IsInSeries():
		return UpdateDetach, c.detach(ctx, original, updated)

	case updated.Repeated.IsSeries():
		updated.RepeatGroupID = nil
		if _, err := c.generator.Generate(ctx, updated); err != nil {
			return UpdateStart, err
		}
		return UpdateStart, nil

	default:
		return UpdateSingle, nil
	}
}

// propagate splits the series at updated: later rows take the new values
// and a fresh group id, earlier rows keep the old ones.
func (c *Coordinator) propagate(ctx context.Context, original, updated *entity.RecurringEntry) error {
	newGroupID := uuid.New()
	if err := c.entryRepo.AssignGroup(ctx, updated.Kind, updated.ID, &newGroupID); err != nil {
		return fmt.Errorf("failed to re-key edited occurrence: %w", err)
	}
	updated.RepeatGroupID = &newGroupID

	_, err := c.entryRepo.UpdateSeriesAfter(
		ctx,
		updated.Kind,
		updated.UserID,
		*original.RepeatGroupID,
		updated.Date,
		updated.SeriesFields(),
		newGroupID,
	)
	if err != nil {
		return fmt.Errorf("failed to propagate series fields: %w", err)
	}
	return nil
}

func (c *Coordinator) regenerate(ctx context.Context, original, updated *entity.RecurringEntry) error {
	if err := c.dropTail(ctx, original, updated); err != nil {
		return err
	}

	updated.RepeatGroupID = nil
	if _, err := c.generator.Generate(ctx, updated); err != nil {
		return fmt.Errorf("failed to regenerate series: %w", err)
	}
	return nil
}

func (c *Coordinator) detach(ctx context.Context, original, updated *entity.RecurringEntry) error {
	if err := c.dropTail(ctx, original, updated); err != nil {
		return err
	}

	if err := c.entryRepo.AssignGroup(ctx, updated.Kind, updated.ID, nil); err != nil {
		return fmt.Errorf("failed to clear repeat group: %w", err)
	}
	updated.RepeatGroupID = nil
	return nil
}

// dropTail deletes the original series from original.Date on, sparing the edited row.
func (c *Coordinator) dropTail(ctx context.Context, original, updated *entity.RecurringEntry) error {
	keep := updated.ID
	_, err := c.entryRepo.DeleteSeriesFrom(
		ctx, original.Kind, original.UserID, *original.RepeatGroupID, original.Date, &keep,
	)
	if err != nil {
		return fmt.Errorf("failed to delete series tail: %w", err)
	}
	return nil
}
