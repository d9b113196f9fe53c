package schedules

import (
	"bellschedule-service/internal/app/models"
	"slices"
	"time"
)

type RotationResolver struct {
	table map[time.Weekday]models.Rotation
}

// DefaultRotationTable is the current block rotation. Monday starts from the
// canonical order and each following day through Thursday shifts it left by one.
// Friday repeats Monday until a Friday rotation is decided. Weekends have none.
func DefaultRotationTable() map[time.Weekday]models.Rotation {
	return map[time.Weekday]models.Rotation{
		time.Monday:    {models.LabelA, models.LabelB, models.LabelC, models.LabelD},
		time.Tuesday:   {models.LabelB, models.LabelC, models.LabelD, models.LabelA},
		time.Wednesday: {models.LabelC, models.LabelD, models.LabelA, models.LabelB},
		time.Thursday:  {models.LabelD, models.LabelA, models.LabelB, models.LabelC},
		time.Friday:    {models.LabelA, models.LabelB, models.LabelC, models.LabelD},
	}
}

func NewRotationResolver(table map[time.Weekday]models.Rotation) *RotationResolver {
	owned := make(map[time.Weekday]models.Rotation, len(table))
	for weekday, rotation := range table {
		owned[weekday] = slices.Clone(rotation)
	}
	return &RotationResolver{table: owned}
}

// Resolve returns the rotation for weekday. Days missing from the table, including
// out-of-range values, resolve to an empty rotation.
func (r *RotationResolver) Resolve(weekday time.Weekday) models.Rotation {
	rotation, ok := r.table[weekday]
	if !ok {
		return models.Rotation{}
	}
	return slices.Clone(rotation)
}
