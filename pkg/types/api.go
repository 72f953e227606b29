package types

import (
	"time"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/core/optimizer"
	"github.com/federacion/fixture-scheduler/internal/core/schedule"
)

// Club API types
type CreateClubRequest struct {
	Name      string                 `json:"name" validate:"required,min=1,max=100"`
	Locality  string                 `json:"locality,omitempty" validate:"omitempty,max=100"`
	Venue     models.VenueDescriptor `json:"venue,omitempty"`
	OwnsVenue bool                   `json:"owns_venue"`
}

type UpdateClubRequest struct {
	Name      *string                 `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Locality  *string                 `json:"locality,omitempty" validate:"omitempty,max=100"`
	Venue     *models.VenueDescriptor `json:"venue,omitempty"`
	OwnsVenue *bool                   `json:"owns_venue,omitempty"`
}

type ClubResponse struct {
	ID        int                    `json:"id"`
	Name      string                 `json:"name"`
	Locality  string                 `json:"locality,omitempty"`
	Venue     models.VenueDescriptor `json:"venue"`
	OwnsVenue bool                   `json:"owns_venue"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func ClubToResponse(club *models.Club) ClubResponse {
	return ClubResponse{
		ID:        club.ID,
		Name:      club.Name,
		Locality:  club.Locality,
		Venue:     club.Venue,
		OwnsVenue: club.OwnsVenue,
		CreatedAt: club.CreatedAt,
		UpdatedAt: club.UpdatedAt,
	}
}

// Tournament API types
type CreateTournamentRequest struct {
	ID             string                `json:"id" validate:"required,min=1,max=50"`
	Name           string                `json:"name" validate:"required,min=1,max=100"`
	Kind           models.TournamentKind `json:"kind" validate:"required,oneof=double_round_robin single_round_robin fixed_dates"`
	FixedDateCount int                   `json:"fixed_date_count,omitempty" validate:"omitempty,min=1,max=52"`
	Participants   []string              `json:"participants" validate:"required,min=2"`
}

type UpdateTournamentRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	FixedDateCount *int     `json:"fixed_date_count,omitempty" validate:"omitempty,min=1,max=52"`
	Participants   []string `json:"participants,omitempty" validate:"omitempty,min=2"`
}

type TournamentResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Kind           models.TournamentKind `json:"kind"`
	LeagueClass    models.LeagueClass    `json:"league_class,omitempty"`
	FixedDateCount int                   `json:"fixed_date_count,omitempty"`
	Participants   []string              `json:"participants"`
}

func TournamentToResponse(t *models.Tournament) TournamentResponse {
	return TournamentResponse{
		ID:             t.ID,
		Name:           t.Name,
		Kind:           t.Kind,
		LeagueClass:    t.LeagueClass(),
		FixedDateCount: t.FixedDateCount,
		Participants:   t.Participants,
	}
}

// Rule API types
type CreateRuleRequest struct {
	SourceClub       string          `json:"source_club" validate:"required"`
	SourceTournament string          `json:"source_tournament" validate:"required"`
	TargetClub       string          `json:"target_club" validate:"required"`
	TargetTournament string          `json:"target_tournament" validate:"required"`
	Kind             models.RuleKind `json:"kind" validate:"required,oneof=mirror inverse"`
	Hard             bool            `json:"hard"`
	Weight           int             `json:"weight,omitempty" validate:"omitempty,min=0"`
}

type RuleResponse struct {
	ID               int             `json:"id"`
	SourceClub       string          `json:"source_club"`
	SourceTournament string          `json:"source_tournament"`
	TargetClub       string          `json:"target_club"`
	TargetTournament string          `json:"target_tournament"`
	Kind             models.RuleKind `json:"kind"`
	Hard             bool            `json:"hard"`
	Weight           int             `json:"weight,omitempty"`
}

func RuleToResponse(r *models.Rule) RuleResponse {
	return RuleResponse{
		ID:               r.ID,
		SourceClub:       r.SourceClub,
		SourceTournament: r.SourceTournament,
		TargetClub:       r.TargetClub,
		TargetTournament: r.TargetTournament,
		Kind:             r.Kind,
		Hard:             r.Hard,
		Weight:           r.Weight,
	}
}

// Solve API types
type StartSolveRequest struct {
	Temperature    float64                      `json:"temperature,omitempty" validate:"omitempty,min=0.1,max=1000"`
	CoolingRate    float64                      `json:"cooling_rate,omitempty" validate:"omitempty,min=0.1,max=0.999"`
	MaxIterations  int                          `json:"max_iterations,omitempty" validate:"omitempty,min=100,max=1000000"`
	Schedule       *optimizer.TemperatureConfig `json:"temperature_schedule,omitempty"`
	TimeoutSeconds int                          `json:"timeout_seconds,omitempty" validate:"omitempty,min=60,max=180"`
	// LocalityCaps and Exclusions, each when non-empty, replace the
	// service's matching setting via Service.SetLogisticalConfig. The
	// replacement stays in effect for later solves, including ones that
	// omit the field; until a request supplies LocalityCaps,
	// schedule.DefaultConfig's automatic per-locality cap applies.
	LocalityCaps []schedule.LocalityCap   `json:"locality_caps,omitempty" validate:"omitempty,dive"`
	Exclusions   []schedule.ExclusionPair `json:"exclusions,omitempty" validate:"omitempty,dive"`
}

type StartSolveResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type SolveStatusResponse struct {
	JobID        string              `json:"job_id"`
	Status       string              `json:"status"`
	SolverStatus models.SolverStatus `json:"solver_status,omitempty"`
	Progress     optimizer.Progress  `json:"progress"`
	StartedAt    time.Time           `json:"started_at"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	Error        *string             `json:"error,omitempty"`
}

func SolveStatusToResponse(job *optimizer.Job) SolveStatusResponse {
	resp := SolveStatusResponse{
		JobID:       job.ID,
		Status:      string(job.Status),
		Progress:    job.Progress,
		StartedAt:   job.StartedAt,
		CompletedAt: job.CompletedAt,
	}
	if job.Result != nil {
		resp.SolverStatus = job.Result.Status
	}
	if job.Error != "" {
		resp.Error = &job.Error
	}
	return resp
}

type SolveJobsResponse struct {
	Jobs []SolveStatusResponse `json:"jobs"`
}

type FixtureResponse struct {
	JobID   string         `json:"job_id"`
	Fixture models.Fixture `json:"fixture"`
}

// SizingResponse reports what Size() computed for the current federation
// state, without running a solve — useful for a client to preview the
// horizon and tournament count before committing to a wall-clock budget.
type SizingResponse struct {
	Horizon         int `json:"horizon"`
	TournamentCount int `json:"tournament_count"`
}

func SizingToResponse(sized *schedule.Sized) SizingResponse {
	return SizingResponse{
		Horizon:         sized.Horizon,
		TournamentCount: len(sized.Tournaments),
	}
}

// Generic API response types
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Query parameters
type ListQueryParams struct {
	Page    int    `form:"page" validate:"omitempty,min=1"`
	PerPage int    `form:"per_page" validate:"omitempty,min=1,max=100"`
	SortBy  string `form:"sort_by" validate:"omitempty,oneof=id name"`
	SortDir string `form:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

// PaginatedResponse wraps a page of list results with pagination metadata.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
}
