// Package wizard holds the per-visitor state of the guided recommendation flow.
//
// A Session moves through four steps: mandatory details, optional details,
// recommendation and plan comparison. Step functions take a Session by value and
// return the updated copy; persistence is left to a Store.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/investease/sip-planner/internal/domain"
)

// Step identifies a page of the flow
type Step string

const (
	StepMandatory      Step = "mandatory"
	StepOptional       Step = "optional"
	StepRecommendation Step = "recommendation"
	StepCompare        Step = "compare"
)

var stepOrder = []Step{StepMandatory, StepOptional, StepRecommendation, StepCompare}

func (s Step) index() int {
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return -1
}

var (
	// ErrMandatoryMissing is returned when a later step is reached before the
	// mandatory details were submitted
	ErrMandatoryMissing = errors.New("mandatory details are required")
	// ErrNoNextStep is returned by Advance on the last step
	ErrNoNextStep = errors.New("no step after plan comparison")
)

// nowFunc returns the current time (override in tests for determinism)
var nowFunc = time.Now

// Session is one visitor's progress through the flow
type Session struct {
	ID        string                   `json:"id"`
	Step      Step                     `json:"step"`
	Mandatory *domain.MandatoryDetails `json:"mandatory,omitempty"`
	Optional  *domain.OptionalDetails  `json:"optional,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// NewSession starts a flow at the mandatory details step
func NewSession() Session {
	now := nowFunc()
	return Session{
		ID:        uuid.NewString(),
		Step:      StepMandatory,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s Session) touch() Session {
	s.UpdatedAt = nowFunc()
	return s
}

// SubmitMandatory validates the details and moves to the optional step.
// On validation failure the session is returned unchanged with a FieldErrors.
func SubmitMandatory(s Session, d domain.MandatoryDetails) (Session, error) {
	if errs := ValidateMandatory(d); errs != nil {
		return s, errs
	}
	details := d
	s.Mandatory = &details
	s.Step = StepOptional
	return s.touch(), nil
}

// SubmitOptional stores the optional details and moves to the recommendation step.
// An all-empty submission is treated like SkipOptional.
func SubmitOptional(s Session, o domain.OptionalDetails) (Session, error) {
	if s.Mandatory == nil {
		return s, ErrMandatoryMissing
	}
	if errs := ValidateOptional(o); errs != nil {
		return s, errs
	}
	if o.IsEmpty() {
		s.Optional = nil
	} else {
		details := o
		s.Optional = &details
	}
	s.Step = StepRecommendation
	return s.touch(), nil
}

// SkipOptional moves to the recommendation step without optional details
func SkipOptional(s Session) (Session, error) {
	if s.Mandatory == nil {
		return s, ErrMandatoryMissing
	}
	s.Optional = nil
	s.Step = StepRecommendation
	return s.touch(), nil
}

// Advance moves to the following step. Leaving the mandatory step requires
// submitted mandatory details.
func Advance(s Session) (Session, error) {
	i := s.Step.index()
	if i < 0 {
		return s, fmt.Errorf("unknown step %q", s.Step)
	}
	if i == len(stepOrder)-1 {
		return s, ErrNoNextStep
	}
	if s.Mandatory == nil {
		return s, ErrMandatoryMissing
	}
	s.Step = stepOrder[i+1]
	return s.touch(), nil
}

// Back returns to the previous step, keeping every answer. The first step is a no-op.
func Back(s Session) Session {
	i := s.Step.index()
	if i <= 0 {
		return s
	}
	s.Step = stepOrder[i-1]
	return s.touch()
}

// Recommender produces a recommendation for mandatory details
type Recommender interface {
	RunRecommendation(ctx context.Context, sessionID string, details domain.MandatoryDetails) (*domain.Recommendation, error)
}

// Recommendation asks r for the session's recommendation.
// Sessions without mandatory details get ErrMandatoryMissing.
func Recommendation(ctx context.Context, r Recommender, s Session) (*domain.Recommendation, error) {
	if s.Mandatory == nil {
		return nil, ErrMandatoryMissing
	}
	return r.RunRecommendation(ctx, s.ID, *s.Mandatory)
}
