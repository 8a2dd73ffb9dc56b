package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	assignmentDto "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/model/dto"
	assignmentService "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/service"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/model/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/service"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/failure"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/validator"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/transport/http/response"
)

type Handler struct {
	schedule   service.Schedule
	assignment assignmentService.Assignment
	otel       otel.Otel
}

func New(schedule service.Schedule, assignment assignmentService.Assignment, otel otel.Otel) Handler {
	return Handler{
		schedule:   schedule,
		assignment: assignment,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/workers/{id}", func(routerGroup chi.Router) {
		routerGroup.Get("/schedule", handler.GetSchedule)
		routerGroup.Post("/schedule/slots", handler.AddSlot)
		routerGroup.Delete("/schedule/slots/{slotId}", handler.RemoveSlot)
		routerGroup.Post("/schedule/generate", handler.GenerateSchedule)
		routerGroup.Get("/availability", handler.CheckAvailability)
	})

	router.Post("/assignments/rank", handler.RankCandidates)
}

// GetSchedule returns a worker's slots and status for one day.
// @Summary Get a worker's day schedule
// @Tags Schedule
// @Produce json
// @Param id path string true "Worker ID"
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.ScheduleResponse]
// @Failure 400 {object} response.Error
// @Router /v1/workers/{id}/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	workerID := chi.URLParam(request, constant.RequestParamID)

	day := timezone.Now()

	if raw := request.URL.Query().Get(constant.RequestParamDate); raw != "" {
		parsed, err := timezone.Parse(constant.DayFormat, raw)
		if err != nil {
			response.WithError(writer, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD"))

			return
		}

		day = parsed
	}

	res, err := handler.schedule.GetDaySchedule(ctx, workerID, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get day schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, response.Data[dto.ScheduleResponse]{Data: &res})
}

// AddSlot adds one open slot to a worker's calendar.
// @Summary Add a schedule slot
// @Description Add an open slot. Overlapping windows and windows too close to an existing booking are rejected.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Worker ID"
// @Param request body dto.AddSlotRequest true "Add Slot Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/workers/{id}/schedule/slots [post]
// @Security BearerAuth
func (handler *Handler) AddSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddSlot")
	defer scope.End()

	workerID := chi.URLParam(request, constant.RequestParamID)

	req := dto.AddSlotRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.schedule.AddSlot(ctx, req, workerID, actor); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add slot")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Slot added successfully")
}

// RemoveSlot deletes an open slot from a worker's calendar.
// @Summary Remove a schedule slot
// @Tags Schedule
// @Produce json
// @Param id path string true "Worker ID"
// @Param slotId path string true "Slot ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/workers/{id}/schedule/slots/{slotId} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveSlot")
	defer scope.End()

	workerID := chi.URLParam(request, constant.RequestParamID)
	slotID := chi.URLParam(request, constant.RequestParamSlotID)

	if err := handler.schedule.RemoveSlot(ctx, workerID, slotID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove slot")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Slot removed successfully")
}

// GenerateSchedule expands the worker's slot templates over upcoming days.
// @Summary Generate schedule slots
// @Description Replace the worker's open slots for the covered days from the calendar templates.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Worker ID"
// @Param request body dto.GenerateRequest true "Generate Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/workers/{id}/schedule/generate [post]
// @Security BearerAuth
func (handler *Handler) GenerateSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateSchedule")
	defer scope.End()

	workerID := chi.URLParam(request, constant.RequestParamID)

	req := dto.GenerateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.schedule.Generate(ctx, workerID, req.Days); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate schedule")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Schedule generated successfully")
}

// CheckAvailability runs the availability diagnostics for a worker.
// @Summary Check worker availability
// @Description Workload, capacity, conflict flag, and the next free gap when the worker is unavailable.
// @Tags Schedule
// @Produce json
// @Param id path string true "Worker ID"
// @Param at query string true "Candidate time (RFC3339)"
// @Success 200 {object} response.Data[assignmentDto.Availability]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/workers/{id}/availability [get]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	workerID := chi.URLParam(request, constant.RequestParamID)

	at := timezone.Now()

	if raw := request.URL.Query().Get("at"); raw != "" {
		parsed, err := timezone.Parse(constant.DateFormat, raw)
		if err != nil {
			response.WithError(writer, failure.BadRequestFromString("invalid time, expected RFC3339"))

			return
		}

		at = parsed
	}

	res, err := handler.assignment.CheckAvailability(ctx, workerID, at)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, response.Data[assignmentDto.Availability]{Data: &res})
}

// RankCandidates scores workers for a request and returns the best matches.
// @Summary Rank worker candidates
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body assignmentDto.RankRequest true "Rank Request"
// @Success 200 {object} response.Data[[]assignmentDto.Candidate]
// @Failure 400 {object} response.Error
// @Router /v1/assignments/rank [post]
// @Security BearerAuth
func (handler *Handler) RankCandidates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RankCandidates")
	defer scope.End()

	req := assignmentDto.RankRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if req.Latitude != 0 || req.Longitude != 0 {
		req.HasLocation = true
	}

	res, err := handler.assignment.RankCandidates(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rank candidates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, response.Data[[]assignmentDto.Candidate]{Data: &res})
}
