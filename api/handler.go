package api

import (
	"errors"
	"log"
	"os-scheduler-sim/config"
	"os-scheduler-sim/internal/requests"
	"os-scheduler-sim/internal/responses"
	"os-scheduler-sim/internal/schedulers"
	"os-scheduler-sim/internal/store"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.RunStore
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, runs store.RunStore) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, store: runs}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(request)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := schedulers.ScheduleRoundRobin(request, request.Quantum)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := schedulers.ScheduleShortestJobFirst(request)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	comparison, err := schedulers.ScheduleAll(request)
	if err != nil {
		return err
	}
	for i := range comparison.Results {
		if _, err := s.store.Save(ctx.UserContext(), &comparison.Results[i]); err != nil {
			return err
		}
	}
	return ctx.JSON(comparison)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	response, err := s.store.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// parseRequest decodes the body, fills run_for and quantum from the
// configuration when the client left them out and caps run_for at the
// configured max_run_for.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		log.Printf("invalid request body: %v", err)
		return request, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if request.RunFor == 0 {
		request.RunFor = s.config.Scheduler.RunFor
	}
	if request.Quantum == 0 {
		request.Quantum = s.config.Scheduler.RoundRobin.TimeQuantum
	}
	if err := schedulers.ValidateHorizon(request.RunFor, s.config.Scheduler.MaxRunFor); err != nil {
		return request, err
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, response responses.ScheduleResponse, err error) error {
	if err != nil {
		return err
	}
	if _, err := s.store.Save(ctx.UserContext(), &response); err != nil {
		return err
	}
	return ctx.JSON(response)
}

// ErrorHandler writes every failed request as {"error": msg}.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	case schedulers.IsConfigError(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrRunNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("can not process request %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
}
