// Package state holds the latest submission result for one form instance.
//
// A Container moves between two states. Submit enters pending, runs the
// validation function to completion and returns to idle with the new result,
// replacing the previous one. Reset clears the held result without running
// validation. Containers share nothing; create one per form instance and
// drop it when the instance goes away.
package state
