// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the grid
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package grid

import "errors"

var (
	// ErrNoAxes indicates a requested variable count below MinVariableCount.
	// A grid with no axes has an empty index space and cannot be mapped.
	ErrNoAxes = errors.New("grid: variable count must be at least 1")

	// ErrAxisRange indicates an axis index outside [0, VariableCount()).
	ErrAxisRange = errors.New("grid: axis index out of range")

	// ErrNegativeCount indicates a negative sample count for an axis.
	ErrNegativeCount = errors.New("grid: sample count must be non-negative")

	// ErrAxisUnsized indicates an axis whose sample storage was never
	// allocated via SetSampleCount. Sizing every axis is a precondition
	// for index mapping and table allocation.
	ErrAxisUnsized = errors.New("grid: axis has not been sized")

	// ErrSampleRange indicates a sample index outside [0, SampleCount(axis)).
	ErrSampleRange = errors.New("grid: sample index out of range")

	// ErrRoleUnassigned indicates a physical role that was never mapped to an
	// axis. Unassigned roles must never be dereferenced.
	ErrRoleUnassigned = errors.New("grid: role not assigned to an axis")

	// ErrRoleAxis indicates a role-to-axis assignment referencing an axis
	// index outside [0, VariableCount()). Rejected at construction.
	ErrRoleAxis = errors.New("grid: role assigned to out-of-range axis")

	// ErrTupleLength indicates an index tuple whose length differs from the
	// grid's variable count.
	ErrTupleLength = errors.New("grid: index tuple length mismatch")

	// ErrOffsetRange indicates a flat offset outside [0, Points()).
	ErrOffsetRange = errors.New("grid: flat offset out of range")
)
