package timeline

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

type Tier uint8

const (
	TierNone Tier = iota
	TierLow
	TierNormal
	TierHigh
	TierWarning
	TierDanger
)

var _tierNames = map[Tier]string{
	TierNone:    "none",
	TierLow:     "low",
	TierNormal:  "normal",
	TierHigh:    "high",
	TierWarning: "warning",
	TierDanger:  "danger",
}

func (t Tier) String() string {
	if name, exists := _tierNames[t]; exists {
		return name
	}

	return fmt.Sprintf("tier(%d)", uint8(t))
}

// Class is the presentation class of the tier, empty for TierNone.
func (t Tier) Class() string {
	return ternary(
		t == TierNone,

		"",
		t.String(),
	)
}

// Threshold matches percentages above Limit when Exclusive,
// at or above Limit otherwise.
type Threshold struct {
	Tier      Tier
	Limit     float64
	Exclusive bool
}

func (th Threshold) matches(percentage float64) bool {
	if th.Exclusive {
		return percentage > th.Limit
	}

	return percentage >= th.Limit
}

// Policy is a named tier table. Thresholds are evaluated in order,
// first match wins, Fallback otherwise.
type Policy struct {
	Name       string
	Thresholds []Threshold
	Fallback   Tier
}

type ParamsNewPolicy struct {
	Name       string      `valid:"required"`
	Thresholds []Threshold `valid:"required"`
	Fallback   Tier
}

func NewPolicy(params *ParamsNewPolicy) (*Policy, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Workload",
				Caller:      "NewPolicy",
				Issue:       errValidation,
			}
	}

	thresholds := make([]Threshold, len(params.Thresholds))
	copy(thresholds, params.Thresholds)

	return &Policy{
			Name:       params.Name,
			Thresholds: thresholds,
			Fallback:   params.Fallback,
		},
		nil
}

// Classify never clamps its input. NaN falls through to Fallback.
func (p *Policy) Classify(percentage float64) Tier {
	for _, threshold := range p.Thresholds {
		if threshold.matches(percentage) {
			return threshold.Tier
		}
	}

	return p.Fallback
}

func (p *Policy) String() string {
	var sb strings.Builder

	sb.WriteString(p.Name)
	sb.WriteString(": ")

	for _, threshold := range p.Thresholds {
		sb.WriteString(
			fmt.Sprintf(
				"%s%g→%s, ",

				ternary(threshold.Exclusive, ">", ">="),
				threshold.Limit,
				threshold.Tier,
			),
		)
	}

	sb.WriteString("else→")
	sb.WriteString(p.Fallback.String())

	return sb.String()
}

const (
	PolicyNameFiveTier = "five-tier"
	PolicyNameOverload = "overload"
)

// PolicyFiveTier is used by the member and dashboard progress bars.
var PolicyFiveTier = Policy{
	Name: PolicyNameFiveTier,
	Thresholds: []Threshold{
		{Tier: TierDanger, Limit: 100, Exclusive: true},
		{Tier: TierWarning, Limit: 90},
		{Tier: TierHigh, Limit: 75},
		{Tier: TierNormal, Limit: 50},
	},
	Fallback: TierLow,
}

// PolicyOverload is used by the statistics view. Its warning boundary
// is 80 exclusive, not 90 inclusive; the two are kept distinct.
var PolicyOverload = Policy{
	Name: PolicyNameOverload,
	Thresholds: []Threshold{
		{Tier: TierDanger, Limit: 100, Exclusive: true},
		{Tier: TierWarning, Limit: 80, Exclusive: true},
	},
	Fallback: TierNone,
}

var ErrUnknownPolicy = errors.New("unknown workload policy")

func PolicyByName(name string) (*Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyNameFiveTier:
		return &PolicyFiveTier,
			nil

	case PolicyNameOverload:
		return &PolicyOverload,
			nil
	}

	return nil,
		goerrors.ErrInvalidInput{
			Caller:     "PolicyByName",
			InputName:  "name",
			InputValue: name,
			Issue:      ErrUnknownPolicy,
		}
}

// Classify uses the five tier policy.
func Classify(percentage float64) Tier {
	return PolicyFiveTier.Classify(percentage)
}

// VisualWidth caps a percentage at 100 for bar rendering. Idempotent.
func VisualWidth(percentage float64) float64 {
	return minOf(percentage, 100)
}
