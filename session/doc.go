// Package session models one calculator screen per mode as an explicit
// state machine driven by key presses.
//
// Every mode moves through the same three states:
//
//	Idle ──key──▶ AwaitingOperand ──"="──▶ HasResult
//	  ▲                                        │
//	  └──────────────────"C"───────────────────┘
//
// A Session owns its working values (display text, pending operation,
// stored operand, memory) and nothing else; two sessions never share state.
// Sessions are not safe for concurrent use.
//
// Computation failures never escape as errors: they land on the display
// ("Error", "No unique solution", "Cannot determine the limit", ...). Press
// returns an error only for a key the mode does not have.
package session
