package controllers

import (
	"bellschedule-service/internal/app/contracts"
	"bellschedule-service/internal/app/models"
	"bellschedule-service/internal/pkg/constvars"
	"bellschedule-service/internal/pkg/dto/requests"
	"bellschedule-service/internal/pkg/dto/responses"
	"bellschedule-service/internal/pkg/exceptions"
	"bellschedule-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
	Location        *time.Location
	Clock           func() time.Time
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase, location *time.Location) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
		Location:        location,
		Clock:           time.Now,
	}
}

func (ctrl *ScheduleController) FindTodaySchedule(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		ctrl.Log.Error("ScheduleController.FindTodaySchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScheduleController.FindTodaySchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	weekday, _, err := ctrl.resolveInstant(r)
	if err != nil {
		ctrl.Log.Error("ScheduleController.FindTodaySchedule invalid query parameters",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	periods := ctrl.ScheduleUsecase.TodaySchedule(r.Context(), weekday)

	response := make([]responses.DisplayPeriod, len(periods))
	for i, period := range periods {
		response[i] = period.ConvertIntoResponse()
	}

	ctrl.Log.Info("ScheduleController.FindTodaySchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, weekday.String()),
		zap.Int(constvars.LoggingPeriodCountKey, len(response)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *ScheduleController) FindCurrentBlock(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		ctrl.Log.Error("ScheduleController.FindCurrentBlock requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScheduleController.FindCurrentBlock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	weekday, minute, err := ctrl.resolveInstant(r)
	if err != nil {
		ctrl.Log.Error("ScheduleController.FindCurrentBlock invalid query parameters",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result := ctrl.ScheduleUsecase.CurrentPeriod(r.Context(), weekday, minute)
	response := result.ConvertIntoResponse()

	ctrl.Log.Info("ScheduleController.FindCurrentBlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekdayKey, weekday.String()),
		zap.String(constvars.LoggingMinuteOfDayKey, minute.String()),
		zap.String(constvars.LoggingBlockKey, response.Block),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

// resolveInstant reads the weekday and minute from the request's day/at query
// parameters, falling back to the controller clock for whichever is absent.
func (ctrl *ScheduleController) resolveInstant(r *http.Request) (time.Weekday, models.TimeOfDay, error) {
	query := requests.ScheduleQuery{
		Day: r.URL.Query().Get(constvars.QueryParamDay),
		At:  r.URL.Query().Get(constvars.QueryParamAt),
	}
	if err := utils.ValidateStruct(&query); err != nil {
		return 0, 0, exceptions.ErrInputValidation(err)
	}

	now := ctrl.Clock().In(ctrl.Location)
	weekday := now.Weekday()
	minute := models.NewTimeOfDay(now.Hour(), now.Minute())

	if query.Day != "" {
		parsed, err := utils.ParseWeekday(query.Day)
		if err != nil {
			return 0, 0, exceptions.ErrInvalidWeekday(err, query.Day)
		}
		weekday = parsed
	}
	if query.At != "" {
		hour, mins, err := utils.ParseClock(query.At)
		if err != nil {
			return 0, 0, exceptions.ErrInvalidTimeOfDay(err, query.At)
		}
		minute = models.NewTimeOfDay(hour, mins)
	}

	return weekday, minute, nil
}
