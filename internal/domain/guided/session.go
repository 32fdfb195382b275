package guided

import (
	"context"
	"errors"
	"fmt"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/domain/pricing"
)

var (
	ErrWrongStep        = errors.New("answer does not belong to the current step")
	ErrCannotProceed    = errors.New("current step is incomplete")
	ErrFinishRequired   = errors.New("style step completes with Finish")
	ErrNoPreviousStep   = errors.New("already at the first step")
	ErrSessionFinished  = errors.New("session already has results; start over")
	ErrCatalogueFailure = errors.New("catalogue query failed")
)

type Step int

const (
	StepOccasion Step = iota + 1
	StepBudget
	StepRecipient
	StepStyle
	StepResults
)

func (s Step) String() string {
	switch s {
	case StepOccasion:
		return "occasion"
	case StepBudget:
		return "budget"
	case StepRecipient:
		return "recipient"
	case StepStyle:
		return "style"
	case StepResults:
		return "results"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// CatalogueQuerier runs the occasion/gender pre-filter against the catalogue.
type CatalogueQuerier interface {
	List(ctx context.Context, filter entities.ItemFilter) ([]entities.Item, error)
}

// Session walks one user through the guided steps. It is owned by a single
// caller and is not safe for concurrent use.
type Session struct {
	step     Step
	criteria Criteria
	results  []Match
}

func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

func (s *Session) Step() Step { return s.step }

func (s *Session) Criteria() Criteria { return s.criteria }

func (s *Session) Results() []Match { return s.results }

func (s *Session) Finished() bool { return s.step == StepResults }

// Reset starts over from the occasion step with all answers cleared.
func (s *Session) Reset() {
	s.step = StepOccasion
	s.criteria = Criteria{Budget: DefaultBudget}
	s.results = nil
}

func (s *Session) SetOccasion(o Occasion) error {
	if err := s.expect(StepOccasion); err != nil {
		return err
	}
	if !o.Valid() {
		return ErrInvalidOccasion
	}
	s.criteria.Occasion = o
	return nil
}

func (s *Session) SetBudget(b Budget) error {
	if err := s.expect(StepBudget); err != nil {
		return err
	}
	s.criteria.Budget = b
	return nil
}

func (s *Session) SetRecipient(r Recipient) error {
	if err := s.expect(StepRecipient); err != nil {
		return err
	}
	if !r.Valid() {
		return ErrInvalidRecipient
	}
	s.criteria.Recipient = r
	return nil
}

func (s *Session) SetStyle(c pricing.WeightClass) error {
	if err := s.expect(StepStyle); err != nil {
		return err
	}
	if !c.Valid() {
		return ErrInvalidStyle
	}
	s.criteria.Style = c
	return nil
}

// CanProceed reports whether the current step has a usable answer.
func (s *Session) CanProceed() bool {
	switch s.step {
	case StepOccasion:
		return s.criteria.Occasion.Valid()
	case StepBudget:
		return s.criteria.Budget.Min >= 0
	case StepRecipient:
		return s.criteria.Recipient.Valid()
	case StepStyle:
		return s.criteria.Style.Valid()
	}
	return false
}

// Next advances one step. The style step is left only through Finish.
func (s *Session) Next() error {
	switch s.step {
	case StepResults:
		return ErrSessionFinished
	case StepStyle:
		return ErrFinishRequired
	}
	if !s.CanProceed() {
		return ErrCannotProceed
	}
	s.step++
	return nil
}

// Back returns to the previous step keeping every answer.
func (s *Session) Back() error {
	switch s.step {
	case StepResults:
		return ErrSessionFinished
	case StepOccasion:
		return ErrNoPreviousStep
	}
	s.step--
	return nil
}

// Finish queries the catalogue, filters the result and moves to the results
// step. On a query failure the session stays on the style step.
func (s *Session) Finish(ctx context.Context, catalogue CatalogueQuerier, rates *entities.RateTable) ([]Match, error) {
	if s.step != StepStyle {
		return nil, ErrWrongStep
	}
	if !s.CanProceed() {
		return nil, ErrCannotProceed
	}

	items, err := catalogue.List(ctx, s.criteria.CatalogueFilter())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogueFailure, err)
	}

	s.results = Filter(items, s.criteria, rates)
	s.step = StepResults
	return s.results, nil
}

func (s *Session) expect(step Step) error {
	if s.step == StepResults {
		return ErrSessionFinished
	}
	if s.step != step {
		return ErrWrongStep
	}
	return nil
}
