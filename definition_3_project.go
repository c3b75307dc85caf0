package timeline

import (
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

type Project struct {
	Name        string
	Description string
	Status      string

	StartDate *time.Time
	Deadline  *time.Time

	ID int64
}

// IsValid fails on a missing window bound. An inverted window is valid,
// layout handles it through the degenerate span fallback.
func (p *Project) IsValid() error {
	if p == nil {
		return goerrors.ErrInvalidInput{
			Caller:    "IsValid - Project",
			InputName: "Project",
			Issue: goerrors.ErrNilInput{
				InputName: "Project",
			},
		}
	}

	if p.StartDate == nil || p.StartDate.IsZero() {
		return goerrors.ErrInvalidInput{
			Caller:     "IsValid - Project",
			InputName:  "StartDate",
			InputValue: p.StartDate,
			Issue: goerrors.ErrNilInput{
				InputName: "StartDate",
			},
		}
	}

	if p.Deadline == nil || p.Deadline.IsZero() {
		return goerrors.ErrInvalidInput{
			Caller:     "IsValid - Project",
			InputName:  "Deadline",
			InputValue: p.Deadline,
			Issue: goerrors.ErrNilInput{
				InputName: "Deadline",
			},
		}
	}

	return nil
}

func (p *Project) Window() (TimeWindow, error) {
	if errValidation := p.IsValid(); errValidation != nil {
		return TimeWindow{},
			errValidation
	}

	return TimeWindow{
			Start: *p.StartDate,
			End:   *p.Deadline,
		},
		nil
}
