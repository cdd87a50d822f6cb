// Package errors provides the structured error type used across rpg-tactics.
//
// Errors carry a Code, a message, an optional cause and free-form metadata.
// Wrapping keeps the original code so callers can branch on it after any
// number of layers:
//
//	out, err := repo.Get(ctx, &session.GetInput{ID: id})
//	if err != nil {
//	    if errors.IsNotFound(err) {
//	        return nil, err
//	    }
//	    return nil, errors.Wrap(err, "failed to load session")
//	}
//
// # Validation
//
// Service configs validate their dependencies with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Random == nil {
//	    vb.RequiredField("Random")
//	}
//	errors.ValidateRange("Width", c.Width, 1, 256, vb)
//	return vb.Build()
//
// # What is not an error
//
// Simulation operations never return an error for an illegal game action
// (moving out of range, attacking an empty tile, casting without a slot).
// Those are declined by returning Accepted=false with no state change. An
// unreachable path is reported as ok=false. Errors are reserved for
// programming mistakes (nil input, missing dependency), unknown ids and
// storage failures.
//
// # Layer guidelines
//
// Repository layer:
//   - Return NotFound for missing keys or rows
//   - Wrap driver errors with context
//
// Orchestrator layer:
//   - Return InvalidArgument for malformed input
//   - Return FailedPrecondition when the session is in the wrong phase
//   - Wrap repository errors with business context
package errors
