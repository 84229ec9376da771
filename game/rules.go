// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PointSequence is the ascending list of point values awarded in one turn.
type PointSequence []int

// DefaultPoints is the canonical sequence
var DefaultPoints = PointSequence{1, 3, 6, 9}

var ErrInvalidPoints = errors.New("invalid point sequence")

// Validate checks the sequence is non-empty, positive and strictly ascending
func (p PointSequence) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPoints)
	}
	for i, v := range p {
		if v <= 0 {
			return fmt.Errorf("%w: value %d at index %d is not positive", ErrInvalidPoints, v, i)
		}
		if i > 0 && v <= p[i-1] {
			return fmt.Errorf("%w: value %d at index %d is not above %d", ErrInvalidPoints, v, i, p[i-1])
		}
	}
	return nil
}

// Sum returns the points handed out by one full turn
func (p PointSequence) Sum() int {
	total := 0
	for _, v := range p {
		total += v
	}
	return total
}

func (p PointSequence) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// ParsePoints parses a comma separated list such as "1,3,6,9"
func ParsePoints(s string) (PointSequence, error) {
	var p PointSequence
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidPoints, field)
		}
		p = append(p, v)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// EndPolicy decides what happens after the last player's turn is finalized.
type EndPolicy string

const (
	EndTerminate EndPolicy = "terminate"
	EndWrap      EndPolicy = "wrap"
)

// FinalizePolicy decides whether an incomplete turn may be finalized.
type FinalizePolicy string

const (
	FinalizeBlock FinalizePolicy = "block"
	FinalizeAllow FinalizePolicy = "allow"
)

// RevotePolicy decides what a second vote for the same song within one turn does.
type RevotePolicy string

const (
	RevoteAccumulate RevotePolicy = "accumulate"
	RevoteOverwrite  RevotePolicy = "overwrite"
	RevoteReject     RevotePolicy = "reject"
)

var ErrUnknownPolicy = errors.New("unknown policy")

func ParseEndPolicy(s string) (EndPolicy, error) {
	switch p := EndPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case EndTerminate, EndWrap:
		return p, nil
	case "":
		return EndTerminate, nil
	}
	return "", fmt.Errorf("%w: end policy %q", ErrUnknownPolicy, s)
}

func ParseFinalizePolicy(s string) (FinalizePolicy, error) {
	switch p := FinalizePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case FinalizeBlock, FinalizeAllow:
		return p, nil
	case "":
		return FinalizeBlock, nil
	}
	return "", fmt.Errorf("%w: finalize policy %q", ErrUnknownPolicy, s)
}

func ParseRevotePolicy(s string) (RevotePolicy, error) {
	switch p := RevotePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case RevoteAccumulate, RevoteOverwrite, RevoteReject:
		return p, nil
	case "":
		return RevoteAccumulate, nil
	}
	return "", fmt.Errorf("%w: revote policy %q", ErrUnknownPolicy, s)
}

// Rules bundles the point sequence with the three turn policies.
type Rules struct {
	Points   PointSequence
	End      EndPolicy
	Finalize FinalizePolicy
	Revote   RevotePolicy
}

// DefaultRules returns the canonical rule set: [1,3,6,9], terminate after
// the last player, block incomplete finalize, accumulate repeat votes.
func DefaultRules() Rules {
	return Rules{
		Points:   append(PointSequence(nil), DefaultPoints...),
		End:      EndTerminate,
		Finalize: FinalizeBlock,
		Revote:   RevoteAccumulate,
	}
}

// Validate rejects empty sequences and policy values outside the known set
func (r Rules) Validate() error {
	if err := r.Points.Validate(); err != nil {
		return err
	}
	switch r.End {
	case EndTerminate, EndWrap:
	default:
		return fmt.Errorf("%w: end policy %q", ErrUnknownPolicy, r.End)
	}
	switch r.Finalize {
	case FinalizeBlock, FinalizeAllow:
	default:
		return fmt.Errorf("%w: finalize policy %q", ErrUnknownPolicy, r.Finalize)
	}
	switch r.Revote {
	case RevoteAccumulate, RevoteOverwrite, RevoteReject:
	default:
		return fmt.Errorf("%w: revote policy %q", ErrUnknownPolicy, r.Revote)
	}
	return nil
}
