package contracts

import (
	"bellschedule-service/internal/app/models"
	"context"
	"time"
)

type RotationResolver interface {
	Resolve(weekday time.Weekday) models.Rotation
}

type BellTable interface {
	Periods() []models.Period
	At(index int) (models.Period, bool)
	Len() int
}

// ScheduleUsecase answers schedule queries for an explicit weekday and minute.
// Neither operation fails: "no school" and "no class" are ordinary results.
type ScheduleUsecase interface {
	TodaySchedule(ctx context.Context, weekday time.Weekday) []models.DisplayPeriod
	CurrentPeriod(ctx context.Context, weekday time.Weekday, now models.TimeOfDay) models.CurrentPeriodResult
}
