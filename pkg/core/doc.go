// Package core defines the shared language of the onomast system.
//
// This package contains:
//   - Domain entities (PhonemeSet, Pattern, RestrictionSet, Orthography)
//   - The language specification type (Spec) and its validation
//   - The Flavor capability interface implemented by generators
//   - Sentinel errors shared across packages
//
// The Golden Rule: pkg/core imports stdlib only.
// All other packages depend on core, not the reverse.
package core
