// Package seeding reorders seed lists and turns them into duels.
//
// Orderings are permutations applied to a flat seed list before pairing.
// Double elimination brackets feed winners bracket losers into the losers
// bracket through a different ordering at every minor round so that early
// rematches are pushed back; DefaultMinorOrdering holds the schedules for
// the supported bracket sizes.
//
// Every function here is pure: inputs are read, never modified, and every
// result is freshly allocated.
package seeding
