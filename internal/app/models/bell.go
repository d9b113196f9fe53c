package models

import (
	"bellschedule-service/internal/pkg/constvars"
	"fmt"
)

// CanonicalSlot is the fixed position of an instructional period in the bell table.
// It never changes from day to day; the label shown for it does.
type CanonicalSlot int

const (
	Slot0 CanonicalSlot = iota
	Slot1
	Slot2
	Slot3
)

const CanonicalSlotCount = 4

func (s CanonicalSlot) IsValid() bool {
	return s >= Slot0 && s < CanonicalSlotCount
}

// Ref returns a pointer suitable for Period.SlotRef.
func (s CanonicalSlot) Ref() *CanonicalSlot {
	return &s
}

// DisplayLabel is the block letter shown to students for a slot on a given day.
type DisplayLabel string

const (
	LabelA DisplayLabel = "A"
	LabelB DisplayLabel = "B"
	LabelC DisplayLabel = "C"
	LabelD DisplayLabel = "D"
)

// Rotation maps each canonical slot (by index) to the label it carries for one day.
// An empty rotation means there is no school that day.
type Rotation []DisplayLabel

func (r Rotation) IsSchoolDay() bool {
	return len(r) == CanonicalSlotCount
}

// Label returns the label assigned to slot. ok is false when the rotation has no
// entry for it, which is always the case on days without school.
func (r Rotation) Label(slot CanonicalSlot) (label DisplayLabel, ok bool) {
	if !slot.IsValid() || int(slot) >= len(r) {
		return "", false
	}
	return r[slot], true
}

// TimeOfDay is a wall-clock minute counted from midnight, 0 through 1439.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*constvars.MinutesPerHour + minute)
}

func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < constvars.MinutesPerDay
}

func (t TimeOfDay) Hour() int {
	return int(t) / constvars.MinutesPerHour
}

func (t TimeOfDay) Minute() int {
	return int(t) % constvars.MinutesPerHour
}

// String renders the minute as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Period is one row of the bell table. SlotRef is nil for periods that are not
// classes, such as lunch.
type Period struct {
	SlotRef *CanonicalSlot
	Name    string
	Start   TimeOfDay
	End     TimeOfDay
}

func (p Period) IsInstructional() bool {
	return p.SlotRef != nil
}

// Contains reports whether minute falls inside [Start, End]. Both ends are inclusive.
func (p Period) Contains(minute TimeOfDay) bool {
	return minute >= p.Start && minute <= p.End
}

// Display labels the period with today's rotation. Lunch-like periods and every
// period on a day without school come back with no displayed block.
func (p Period) Display(rotation Rotation) DisplayPeriod {
	display := DisplayPeriod{
		Name:  p.Name,
		Start: p.Start,
		End:   p.End,
	}
	if p.SlotRef == nil {
		return display
	}
	if label, ok := rotation.Label(*p.SlotRef); ok {
		display.DisplayedBlock = &label
	}
	return display
}
