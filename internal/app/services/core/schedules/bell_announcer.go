package schedules

import (
	"bellschedule-service/internal/app/config"
	"bellschedule-service/internal/app/contracts"
	"bellschedule-service/internal/app/models"
	"bellschedule-service/internal/pkg/constvars"
	"bellschedule-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// BellAnnouncer periodically checks which class is in session and logs a bell
// event whenever that changes.
type BellAnnouncer struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	scheduleUsecase contracts.ScheduleUsecase
	location        *time.Location
	now             func() time.Time
	cron            *cron.Cron

	mu      sync.Mutex
	lastKey string
}

func NewBellAnnouncer(log *zap.Logger, cfg *config.InternalConfig, scheduleUsecase contracts.ScheduleUsecase, location *time.Location) *BellAnnouncer {
	return &BellAnnouncer{
		log:             log,
		cfg:             cfg,
		scheduleUsecase: scheduleUsecase,
		location:        location,
		now:             time.Now,
	}
}

// Start announces the current state once and then on every cron tick.
func (a *BellAnnouncer) Start() {
	spec := a.cfg.App.BellAnnouncerCronSpec
	c, err := a.newCron(spec)
	if err != nil {
		a.log.Warn("schedules.bellAnnouncer: invalid cron spec; falling back",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		spec = constvars.BellAnnouncerFallbackCronSpec
		c, err = a.newCron(spec)
		if err != nil {
			a.log.Error("schedules.bellAnnouncer: fallback cron spec rejected; announcer not started",
				zap.String(constvars.LoggingCronSpecKey, spec),
				zap.Error(err),
			)
			return
		}
	}

	a.Tick(a.now())
	c.Start()
	a.cron = c
	a.log.Info("schedules.bellAnnouncer: started", zap.String(constvars.LoggingCronSpecKey, spec))
}

func (a *BellAnnouncer) newCron(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(a.location))
	if _, err := c.AddFunc(spec, func() { a.Tick(a.now()) }); err != nil {
		return nil, err
	}
	return c, nil
}

// Stop waits for a running tick to finish.
func (a *BellAnnouncer) Stop() {
	if a.cron == nil {
		return
	}
	ctx := a.cron.Stop()
	<-ctx.Done()
	a.log.Info("schedules.bellAnnouncer: stopped")
}

// Tick evaluates the schedule at now and reports whether a new bell event was logged.
func (a *BellAnnouncer) Tick(now time.Time) bool {
	local := now.In(a.location)
	minute := models.NewTimeOfDay(local.Hour(), local.Minute())
	result := a.scheduleUsecase.CurrentPeriod(context.Background(), local.Weekday(), minute)

	key := announcementKey(local, result)

	a.mu.Lock()
	defer a.mu.Unlock()
	if key == a.lastKey {
		return false
	}
	a.lastKey = key

	if result.IsNone() {
		utils.LogBusinessEvent(a.log, "bell.no_current_class", "",
			zap.String(constvars.LoggingWeekdayKey, local.Weekday().String()),
			zap.String(constvars.LoggingMinuteOfDayKey, minute.String()),
			zap.String(constvars.LoggingResponseMessageKey, result.Message),
		)
		return true
	}

	utils.LogBusinessEvent(a.log, "bell.period_started", "",
		zap.String(constvars.LoggingWeekdayKey, local.Weekday().String()),
		zap.String(constvars.LoggingBlockKey, string(*result.Period.DisplayedBlock)),
		zap.String(constvars.LoggingPeriodNameKey, result.Period.Name),
		zap.String(constvars.LoggingStartKey, result.Period.Start.String()),
		zap.String(constvars.LoggingEndKey, result.Period.End.String()),
	)
	return true
}

func announcementKey(local time.Time, result models.CurrentPeriodResult) string {
	date := local.Format(time.DateOnly)
	if result.IsNone() {
		return date + "|none"
	}
	return fmt.Sprintf("%s|%s|%s", date, result.Period.Name, result.Period.Start)
}
