// Package errors provides structured errors for the ba-raid-api service.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Codes map one-to-one onto gRPC codes and HTTP statuses.
//
// # Basic Usage
//
//	err := errors.NotFoundf("raid %s not found", raidID)
//	err := errors.InvalidArgument("page_size must be positive").
//	    WithMeta("page_size", input.PageSize)
//
// Wrapping keeps the code of an inner *Error:
//
//	if err := feed.GetParties(ctx, raidID); err != nil {
//	    return errors.Wrapf(err, "failed to load parties for %s", raidID)
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("raid_id", input.RaidID, vb)
//	errors.ValidateRange("star", slot.Star, 0, 5, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). Metadata is attached to the status
// as a google.protobuf.Struct detail and recovered by FromGRPCError on the
// client side.
//
// # Layer Guidelines
//
// Repositories return NotFound/InvalidArgument and wrap storage failures.
// Orchestrators validate input and wrap downstream errors with context.
// Handlers only convert. The party filter engine never returns errors: a
// malformed record simply fails to match.
package errors
