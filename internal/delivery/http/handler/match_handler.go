package handler

import (
	"errors"
	"strconv"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/response"
	"talent-match/internal/queue"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc    usecase.MatchUsecase
	queue *queue.MatchQueue
}

func NewMatchHandler(uc usecase.MatchUsecase, q *queue.MatchQueue) *MatchHandler {
	return &MatchHandler{uc: uc, queue: q}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	grp := r.Group("/jobs")
	grp.Post("/:job_id/match", h.RunMatch)
	grp.Post("/:job_id/match/async", h.EnqueueMatch)
	grp.Get("/:job_id/matches", h.ListMatches)
}

func (h *MatchHandler) RunMatch(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	topN := 0
	if raw := c.Query("top_n"); raw != "" {
		topN, err = strconv.Atoi(raw)
		if err != nil || topN <= 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid top_n", nil, err)
		}
	}

	results, err := h.uc.MatchJob(c.Context(), jobID, topN)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(jobID, results))
}

func (h *MatchHandler) EnqueueMatch(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.queue.Enqueue(jobID); err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "Match queue full", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusAccepted, response.MessageAccepted, dto.MatchEnqueuedResponse{
		JobID:  jobID,
		Status: "enqueued",
	})
}

func (h *MatchHandler) ListMatches(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	results, err := h.uc.GetMatches(c.Context(), jobID)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(jobID, results))
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrMalformedJobData):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Malformed job data", nil, err)
	case errors.Is(err, matching.ErrInvalidWeightConfig):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid weight configuration", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
