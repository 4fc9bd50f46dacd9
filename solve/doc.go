// Package solve provides a registry mapping numeric puzzle identifiers to
// independent, side-effect-free solvers implementing a shared two-phase
// contract.
//
// What:
//
//   - Solver: PartOne and PartTwo, each computing one answer from the same
//     raw input text. Every solver owns its own parsing.
//   - Registry: Register / Lookup / IDs / Run. Run builds a fresh Solver
//     per invocation — no shared mutable state survives between runs — and
//     reports both answers with per-part wall-clock timings.
//   - A package-level default registry mirrors the Registry API for the
//     common single-registry program.
//
// Why:
//
//	Dispatching "which puzzle to run" by number is registry lookup, not a
//	switch statement: solvers register themselves and stay decoupled from
//	each other and from any I/O harness. Reading input files and printing
//	reports are deliberately the caller's concern.
//
// Errors:
//
//   - ErrBadID, ErrNilFactory, ErrDuplicateSolver at registration.
//   - ErrUnknownSolver from Run.
//   - Context errors when cancelled between parts; solver errors are
//     wrapped with the part and id.
package solve
