package routers

import (
	"bellschedule-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Get("/schedule", scheduleController.FindTodaySchedule)
	router.Get("/current-block", scheduleController.FindCurrentBlock)
}
