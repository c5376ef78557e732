package scrap

import (
	"fmt"
	"math"
	"strings"

	"item-tagger/internal/common"
	"item-tagger/internal/record"
)

// RoundMode selects how a scaled component count becomes an integer.
type RoundMode int

const (
	// RoundNormal rounds to the nearest integer, halves to even.
	RoundNormal RoundMode = iota
	// RoundUp rounds towards positive infinity.
	RoundUp
	// RoundDown rounds towards negative infinity.
	RoundDown
)

var roundModeNames = [...]string{
	RoundNormal: "normal",
	RoundUp:     "up",
	RoundDown:   "down",
}

func (m RoundMode) String() string {
	if m < 0 || int(m) >= len(roundModeNames) {
		return common.UnknownStr
	}

	return roundModeNames[m]
}

// ParseRoundMode parses "up", "down" or "normal" ("nearest" is an alias).
func ParseRoundMode(s string) (RoundMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "nearest":
		return RoundNormal, nil
	case "up":
		return RoundUp, nil
	case "down":
		return RoundDown, nil
	default:
		return 0, fmt.Errorf("unknown round mode %q", s)
	}
}

// Round applies the mode to v.
func (m RoundMode) Round(v float64) float64 {
	switch m {
	case RoundUp:
		return math.Ceil(v)
	case RoundDown:
		return math.Floor(v)
	default:
		return math.RoundToEven(v)
	}
}

// Policy is the immutable scrap configuration threaded through a run.
type Policy struct {
	// LossFactor scales every component count; expected in (0, 1].
	LossFactor float64
	Round      RoundMode
	// Exclude lists components that never appear in a recalculated yield.
	Exclude map[record.FormKey]struct{}
}

// NewPolicy builds a Policy from an exclude list.
func NewPolicy(lossFactor float64, round RoundMode, exclude []record.FormKey) Policy {
	p := Policy{
		LossFactor: lossFactor,
		Round:      round,
		Exclude:    make(map[record.FormKey]struct{}, len(exclude)),
	}

	for _, fk := range exclude {
		p.Exclude[fk] = struct{}{}
	}

	return p
}

// IsExcluded reports whether component is on the exclude list.
func (p Policy) IsExcluded(component record.FormKey) bool {
	_, ok := p.Exclude[component]
	return ok
}
