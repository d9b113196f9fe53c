package schedules

import (
	"bellschedule-service/internal/app/models"
	"bellschedule-service/internal/pkg/exceptions"
	"fmt"
	"slices"
)

type BellTable struct {
	periods []models.Period
}

// DefaultBellPeriods is the daily bell schedule. Lunch has no slot, and its end
// minute is also the start of the first afternoon class.
func DefaultBellPeriods() []models.Period {
	return []models.Period{
		{SlotRef: models.Slot0.Ref(), Name: "1st Morning Class", Start: models.NewTimeOfDay(9, 20), End: models.NewTimeOfDay(10, 40)},
		{SlotRef: models.Slot1.Ref(), Name: "2nd Morning Class", Start: models.NewTimeOfDay(10, 45), End: models.NewTimeOfDay(11, 55)},
		{SlotRef: nil, Name: "Lunch", Start: models.NewTimeOfDay(12, 0), End: models.NewTimeOfDay(12, 40)},
		{SlotRef: models.Slot2.Ref(), Name: "1st Afternoon Class", Start: models.NewTimeOfDay(12, 40), End: models.NewTimeOfDay(14, 5)},
		{SlotRef: models.Slot3.Ref(), Name: "2nd Afternoon Class", Start: models.NewTimeOfDay(14, 10), End: models.NewTimeOfDay(15, 25)},
	}
}

// NewBellTable copies periods and checks that every period lies within the day,
// starts before it ends, refers to a valid slot and does not start before the
// previous one ends. Touching boundaries are allowed.
func NewBellTable(periods []models.Period) (*BellTable, error) {
	owned := make([]models.Period, len(periods))
	for i, period := range periods {
		if !period.Start.IsValid() || !period.End.IsValid() {
			return nil, exceptions.ErrInvalidBellTable(fmt.Errorf("%s is outside the day", period.Name), i)
		}
		if period.Start >= period.End {
			return nil, exceptions.ErrInvalidBellTable(fmt.Errorf("%s starts at %s but ends at %s", period.Name, period.Start, period.End), i)
		}
		if period.SlotRef != nil && !period.SlotRef.IsValid() {
			return nil, exceptions.ErrInvalidBellTable(fmt.Errorf("%s refers to slot %d", period.Name, *period.SlotRef), i)
		}
		if i > 0 && period.Start < periods[i-1].End {
			return nil, exceptions.ErrInvalidBellTable(fmt.Errorf("%s starts before %s ends", period.Name, periods[i-1].Name), i)
		}

		if period.SlotRef != nil {
			slot := *period.SlotRef
			period.SlotRef = &slot
		}
		owned[i] = period
	}
	return &BellTable{periods: owned}, nil
}

func (t *BellTable) Periods() []models.Period {
	return slices.Clone(t.periods)
}

func (t *BellTable) At(index int) (models.Period, bool) {
	if index < 0 || index >= len(t.periods) {
		return models.Period{}, false
	}
	return t.periods[index], true
}

func (t *BellTable) Len() int {
	return len(t.periods)
}
