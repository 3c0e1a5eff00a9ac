package recurrence

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/domain/valueobject"
)

// DefaultLockTTL bounds how long a crashed process can hold a user's maintenance lock.
const DefaultLockTTL = 30 * time.Second

// MonthlyCheckInput represents the input for the monthly maintenance check.
type MonthlyCheckInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// MonthlyCheckOutput represents the output of the monthly maintenance check.
type MonthlyCheckOutput struct {
	MonthStart time.Time
	// Ran is false when maintenance had already run this month or another
	// process held the lock.
	Ran                  bool
	Locked               bool
	IncomesExtended      int64
	ExpendituresExtended int64
	Pruned               PruneResult
}

// MonthlyCheckUseCase runs window maintenance at most once per user per month.
type MonthlyCheckUseCase struct {
	profileRepo adapter.ProfileRepository
	roller      *Roller
	transactor  adapter.Transactor
	locker      adapter.Locker
	lockTTL     time.Duration
	inflight    singleflight.Group
}

// NewMonthlyCheckUseCase creates a new MonthlyCheckUseCase instance.
// locker may be nil, in which case only in-process calls are de-duplicated.
func NewMonthlyCheckUseCase(
	profileRepo adapter.ProfileRepository,
	roller *Roller,
	transactor adapter.Transactor,
	locker adapter.Locker,
	lockTTL time.Duration,
) *MonthlyCheckUseCase {
	if lockTTL <= 0 {
		lockTTL = DefaultLockTTL
	}
	return &MonthlyCheckUseCase{
		profileRepo: profileRepo,
		roller:      roller,
		transactor:  transactor,
		locker:      locker,
		lockTTL:     lockTTL,
	}
}

// Execute performs the monthly check. Concurrent calls for the same user in
// this process share one run.
func (uc *MonthlyCheckUseCase) Execute(ctx context.Context, input MonthlyCheckInput) (*MonthlyCheckOutput, error) {
	v, err, _ := uc.inflight.Do(input.UserID.String(), func() (interface{}, error) {
		return uc.run(ctx, input)
	})
	if err != nil {
		return nil, err
	}
	return v.(*MonthlyCheckOutput), nil
}

func (uc *MonthlyCheckUseCase) run(ctx context.Context, input MonthlyCheckInput) (*MonthlyCheckOutput, error) {
	output := &MonthlyCheckOutput{
		MonthStart: valueobject.MonthStart(input.Now),
	}

	if uc.locker != nil {
		unlock, ok, err := uc.locker.TryLock(ctx, maintenanceLockKey(input.UserID), uc.lockTTL)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "Maintenance lock unavailable, continuing without it",
				"user_id", input.UserID,
				"error", err,
			)
		case !ok:
			slog.InfoContext(ctx, "Maintenance already running elsewhere",
				"user_id", input.UserID,
			)
			output.Locked = true
			return output, nil
		default:
			defer func() {
				if err := unlock(context.WithoutCancel(ctx)); err != nil {
					slog.WarnContext(ctx, "Failed to release maintenance lock",
						"user_id", input.UserID,
						"error", err,
					)
				}
			}()
		}
	}

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		profile, err := uc.profileRepo.GetOrCreate(ctx, input.UserID)
		if err != nil {
			return domainerror.NewMaintenanceError(domainerror.StepMarker, err)
		}
		if profile.CheckedFor(output.MonthStart) {
			return nil
		}

		if output.IncomesExtended, err = uc.roller.ExtendIntoSixthMonth(
			ctx, entity.EntryKindIncome, input.UserID, output.MonthStart,
		); err != nil {
			return domainerror.NewMaintenanceError(domainerror.StepExtendIncome, err)
		}

		if output.ExpendituresExtended, err = uc.roller.ExtendIntoSixthMonth(
			ctx, entity.EntryKindExpenditure, input.UserID, output.MonthStart,
		); err != nil {
			return domainerror.NewMaintenanceError(domainerror.StepExtendExpenditure, err)
		}

		if output.Pruned, err = uc.roller.PruneExpired(ctx, input.UserID, output.MonthStart); err != nil {
			return domainerror.NewMaintenanceError(domainerror.StepPrune, err)
		}

		// Advanced last so a failed pass is retried on the next request.
		profile.MarkChecked(output.MonthStart)
		if err := uc.profileRepo.Save(ctx, profile); err != nil {
			return domainerror.NewMaintenanceError(domainerror.StepMarker, err)
		}

		output.Ran = true
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "Monthly maintenance failed",
			"user_id", input.UserID,
			"month", output.MonthStart.Format(valueobject.MonthParamLayout),
			"error", err,
		)
		return nil, err
	}

	if output.Ran {
		slog.InfoContext(ctx, "Monthly maintenance completed",
			"user_id", input.UserID,
			"month", output.MonthStart.Format(valueobject.MonthParamLayout),
			"incomes_extended", output.IncomesExtended,
			"expenditures_extended", output.ExpendituresExtended,
			"pruned", output.Pruned.Total(),
		)
	}

	return output, nil
}

func maintenanceLockKey(userID uuid.UUID) string {
	return "maintenance:" + userID.String()
}
