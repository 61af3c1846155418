package dto

import (
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

type AxisScoreResponse struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

type BreakdownResponse struct {
	Time       AxisScoreResponse `json:"time"`
	Place      AxisScoreResponse `json:"place"`
	Cost       AxisScoreResponse `json:"cost"`
	Experience AxisScoreResponse `json:"experience"`
}

type MatchItemResponse struct {
	CandidateID uuid.UUID         `json:"candidate_id"`
	FinalScore  float64           `json:"final_score"`
	Breakdown   BreakdownResponse `json:"breakdown"`
	CreatedAt   time.Time         `json:"created_at"`
}

type MatchListResponse struct {
	JobID   uuid.UUID           `json:"job_id"`
	Matches []MatchItemResponse `json:"matches"`
}

type MatchEnqueuedResponse struct {
	JobID  uuid.UUID `json:"job_id"`
	Status string    `json:"status"`
}

func NewMatchListResponse(jobID uuid.UUID, results []matching.MatchResult) MatchListResponse {
	out := MatchListResponse{
		JobID:   jobID,
		Matches: make([]MatchItemResponse, 0, len(results)),
	}
	for _, m := range results {
		out.Matches = append(out.Matches, MatchItemResponse{
			CandidateID: m.CandidateID,
			FinalScore:  m.FinalScore,
			Breakdown: BreakdownResponse{
				Time:       AxisScoreResponse(m.Breakdown.Time),
				Place:      AxisScoreResponse(m.Breakdown.Place),
				Cost:       AxisScoreResponse(m.Breakdown.Cost),
				Experience: AxisScoreResponse(m.Breakdown.Experience),
			},
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
