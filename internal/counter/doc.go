// Package counter implements the counter state machine: a bounded integer
// adjusted by increment, decrement and reset commands, an append-only history
// of applied actions and the derived values a front end needs to render it.
//
// Invalid input is never rejected. Setters clamp, and increments or
// decrements that would cross a limit leave the state untouched.
package counter
