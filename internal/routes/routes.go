package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/config"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/handlers"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-availability/internal/usecase/appointment"
	ucBooking "github.com/BruksfildServices01/barber-availability/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/barber-availability/internal/usecase/schedule"
	ucWaitlist "github.com/BruksfildServices01/barber-availability/internal/usecase/waitlist"
)

// Deps are the collaborators the HTTP surface is built on. Locker,
// Notifier and Audit are optional.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger
	Clock  timezone.Clock

	Providers    domain.ProviderDirectory
	Availability ucSchedule.Store
	Appointments domain.AppointmentRepository
	Waitlist     domain.WaitlistStore

	Locker   ucBooking.Locker
	Notifier domain.Notifier
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// CALENDAR
	// ======================================================
	calendar := ucBooking.NewCalendar(
		d.Providers,
		d.Availability,
		d.Clock,
		cfg.BookingWindowDays,
		cfg.DefaultTimezone,
	)

	// ======================================================
	// USE CASES - BOOKING
	// ======================================================
	dayStatesUC := ucBooking.NewGetMonthDayStates(calendar)
	slotsUC := ucBooking.NewListAvailableSlots(calendar, d.Appointments)

	commitOpts := []ucBooking.CommitOption{ucBooking.WithAudit(d.Audit)}
	if d.Locker != nil {
		commitOpts = append(commitOpts, ucBooking.WithLocker(d.Locker))
	}
	if d.Notifier != nil {
		commitOpts = append(commitOpts, ucBooking.WithNotifier(d.Notifier))
	}
	commitUC := ucBooking.NewCommitBooking(calendar, d.Appointments, d.Log, commitOpts...)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	listByDateUC := ucAppointment.NewListAppointmentsByDate(
		d.Providers,
		d.Appointments,
		cfg.DefaultTimezone,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		d.Appointments,
		calendar.Clock(),
		cfg.CancelMinNotice,
		d.Notifier,
		d.Audit,
		d.Log,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		d.Appointments,
		calendar.Clock(),
		d.Audit,
	)

	// ======================================================
	// USE CASES - WAITLIST
	// ======================================================
	joinWaitlistUC := ucWaitlist.NewJoinWaitlist(calendar, d.Waitlist, d.Audit, d.Log)
	listWaitlistUC := ucWaitlist.NewListWaitlist(d.Waitlist)
	updateWaitlistUC := ucWaitlist.NewUpdateWaitlistStatus(d.Waitlist, d.Audit)

	// ======================================================
	// USE CASES - SCHEDULE
	// ======================================================
	getWeeklyUC := ucSchedule.NewGetWeeklyAvailability(d.Providers, d.Availability)
	replaceWeeklyUC := ucSchedule.NewReplaceWeeklyAvailability(d.Providers, d.Availability, d.Audit)
	upsertOverrideUC := ucSchedule.NewUpsertDateOverride(d.Providers, d.Availability, d.Audit)
	deleteOverrideUC := ucSchedule.NewDeleteDateOverride(d.Providers, d.Availability, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(dayStatesUC, slotsUC)
	bookingHandler := handlers.NewBookingHandler(commitUC)
	appointmentHandler := handlers.NewAppointmentHandler(listByDateUC, cancelUC, completeUC)
	waitlistHandler := handlers.NewWaitlistHandler(joinWaitlistUC, listWaitlistUC, updateWaitlistUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(
		getWeeklyUC,
		replaceWeeklyUC,
		upsertOverrideUC,
		deleteOverrideUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		provider := api.Group("/providers/:providerID")
		{
			provider.GET("/day-states", availabilityHandler.DayStates)
			provider.GET("/slots", availabilityHandler.Slots)

			provider.POST("/bookings", bookingHandler.Create)

			provider.GET("/appointments", appointmentHandler.ListByDate)
			provider.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			provider.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			provider.POST("/waitlist", waitlistHandler.Join)
			provider.GET("/waitlist", waitlistHandler.List)

			provider.GET("/working-hours", workingHoursHandler.Get)
			provider.PUT("/working-hours", workingHoursHandler.Update)

			provider.PUT("/overrides/:date", workingHoursHandler.PutOverride)
			provider.DELETE("/overrides/:date", workingHoursHandler.DeleteOverride)
		}

		api.PATCH("/waitlist/:id/status", waitlistHandler.UpdateStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "route_not_found", "no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
}
