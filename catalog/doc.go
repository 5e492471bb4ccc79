// Package catalog holds the compiled-in exercise library: every exercise
// with its category, prescription defaults and the two keyframes its
// illustration animates between.
//
// Lookups never fail loudly. An unknown id reports ok == false and callers
// decide what to do with the absence.
package catalog
