package schedules

import (
	"bellschedule-service/internal/app/contracts"
	"bellschedule-service/internal/app/models"
	"bellschedule-service/internal/pkg/constvars"
	"bellschedule-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	RotationResolver contracts.RotationResolver
	BellTable        contracts.BellTable
	Log              *zap.Logger
}

func NewScheduleUsecase(
	rotationResolver contracts.RotationResolver,
	bellTable contracts.BellTable,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		RotationResolver: rotationResolver,
		BellTable:        bellTable,
		Log:              logger,
	}
}

func (uc *scheduleUsecase) TodaySchedule(ctx context.Context, weekday time.Weekday) []models.DisplayPeriod {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Debug("scheduleUsecase.TodaySchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, weekday.String()),
	)

	rotation := uc.RotationResolver.Resolve(weekday)
	periods := uc.BellTable.Periods()

	result := make([]models.DisplayPeriod, len(periods))
	for i, period := range periods {
		result[i] = period.Display(rotation)
	}

	uc.Log.Debug("scheduleUsecase.TodaySchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSchoolDayKey, rotation.IsSchoolDay()),
		zap.Int(constvars.LoggingPeriodCountKey, len(result)),
	)
	return result
}

// CurrentPeriod picks the first class period, in table order, whose inclusive
// interval contains now. A minute shared by the end of one class and the start of
// the next therefore belongs to the earlier class. Lunch is never picked.
func (uc *scheduleUsecase) CurrentPeriod(ctx context.Context, weekday time.Weekday, now models.TimeOfDay) models.CurrentPeriodResult {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Debug("scheduleUsecase.CurrentPeriod called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, weekday.String()),
		zap.Int(constvars.LoggingMinuteOfDayKey, int(now)),
	)

	rotation := uc.RotationResolver.Resolve(weekday)

	for i := 0; i < uc.BellTable.Len(); i++ {
		period, _ := uc.BellTable.At(i)
		if !period.IsInstructional() || !period.Contains(now) {
			continue
		}

		display := period.Display(rotation)
		if display.DisplayedBlock == nil {
			break
		}

		uc.Log.Debug("scheduleUsecase.CurrentPeriod succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBlockKey, string(*display.DisplayedBlock)),
			zap.String(constvars.LoggingPeriodNameKey, display.Name),
		)
		return models.CurrentPeriodResult{Period: &display}
	}

	uc.Log.Debug("scheduleUsecase.CurrentPeriod found no class in session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return models.NoCurrentPeriod()
}
