package models

import (
	"bellschedule-service/internal/pkg/constvars"
	"bellschedule-service/internal/pkg/dto/responses"
)

type DisplayPeriod struct {
	DisplayedBlock *DisplayLabel
	Name           string
	Start          TimeOfDay
	End            TimeOfDay
}

func (p DisplayPeriod) ConvertIntoResponse() responses.DisplayPeriod {
	response := responses.DisplayPeriod{
		Name:  p.Name,
		Start: p.Start.String(),
		End:   p.End.String(),
	}
	if p.DisplayedBlock != nil {
		response.Block = string(*p.DisplayedBlock)
	}
	return response
}

// CurrentPeriodResult is the answer to "what class is on right now". Period is nil
// when no class is running and Message then carries the text shown to users.
type CurrentPeriodResult struct {
	Period  *DisplayPeriod
	Message string
}

func NoCurrentPeriod() CurrentPeriodResult {
	return CurrentPeriodResult{Message: constvars.NoCurrentClassMessage}
}

func (r CurrentPeriodResult) IsNone() bool {
	return r.Period == nil
}

func (r CurrentPeriodResult) ConvertIntoResponse() responses.CurrentBlock {
	if r.Period == nil {
		return responses.CurrentBlock{Message: r.Message}
	}
	period := r.Period.ConvertIntoResponse()
	return responses.CurrentBlock{
		Block: period.Block,
		Name:  period.Name,
		Start: period.Start,
		End:   period.End,
	}
}
