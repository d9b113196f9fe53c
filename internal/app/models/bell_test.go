package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		name   string
		minute TimeOfDay
		want   string
		valid  bool
	}{
		{"Midnight", 0, "00:00", true},
		{"First bell", NewTimeOfDay(9, 20), "09:20", true},
		{"Lunch", 720, "12:00", true},
		{"Last minute", 1439, "23:59", true},
		{"Past the day", 1440, "", false},
		{"Negative", -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.minute.IsValid())
			if tt.valid {
				assert.Equal(t, tt.want, tt.minute.String())
			}
		})
	}

	assert.Equal(t, TimeOfDay(560), NewTimeOfDay(9, 20))
	assert.Equal(t, 9, NewTimeOfDay(9, 20).Hour())
	assert.Equal(t, 20, NewTimeOfDay(9, 20).Minute())
}

func TestRotation_Label(t *testing.T) {
	rotation := Rotation{LabelB, LabelC, LabelD, LabelA}

	label, ok := rotation.Label(Slot0)
	assert.True(t, ok)
	assert.Equal(t, LabelB, label)

	label, ok = rotation.Label(Slot3)
	assert.True(t, ok)
	assert.Equal(t, LabelA, label)

	_, ok = rotation.Label(CanonicalSlot(4))
	assert.False(t, ok)

	_, ok = Rotation{}.Label(Slot0)
	assert.False(t, ok, "weekend rotation has no labels")

	assert.True(t, rotation.IsSchoolDay())
	assert.False(t, Rotation{}.IsSchoolDay())
}

func TestPeriod_Contains(t *testing.T) {
	period := Period{SlotRef: Slot0.Ref(), Name: "1st Morning Class", Start: 560, End: 640}

	assert.False(t, period.Contains(559))
	assert.True(t, period.Contains(560))
	assert.True(t, period.Contains(600))
	assert.True(t, period.Contains(640))
	assert.False(t, period.Contains(641))
}

func TestPeriod_Display(t *testing.T) {
	monday := Rotation{LabelA, LabelB, LabelC, LabelD}
	tuesday := Rotation{LabelB, LabelC, LabelD, LabelA}

	class := Period{SlotRef: Slot2.Ref(), Name: "1st Afternoon Class", Start: 760, End: 845}
	lunch := Period{Name: "Lunch", Start: 720, End: 760}

	t.Run("Slot is relabeled by the rotation", func(t *testing.T) {
		display := class.Display(tuesday)
		if assert.NotNil(t, display.DisplayedBlock) {
			assert.Equal(t, LabelD, *display.DisplayedBlock)
		}
		assert.Equal(t, "1st Afternoon Class", display.Name)
		assert.Equal(t, TimeOfDay(760), display.Start)
		assert.Equal(t, TimeOfDay(845), display.End)
	})

	t.Run("Lunch never gets a block", func(t *testing.T) {
		assert.Nil(t, lunch.Display(monday).DisplayedBlock)
		assert.False(t, lunch.IsInstructional())
	})

	t.Run("No block without a rotation", func(t *testing.T) {
		assert.Nil(t, class.Display(Rotation{}).DisplayedBlock)
	})
}
