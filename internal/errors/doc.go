// Package errors provides the structured error type shared by every layer of
// the logistics planner.
//
// The simulation core (engine, counts) reports boundary conditions as values:
// a leftover quantity, a short removal. Errors from this package only appear
// where input crosses a trust boundary: persisted records, fixtures, RPC
// requests and storage.
//
// # Basic Usage
//
//	err := errors.NotFoundf("container %s not found", id)
//	err := errors.InvalidArgument("record count cannot be negative").
//	    WithMeta("record_index", i)
//
// Wrapping keeps the code of the underlying *Error, or INTERNAL for foreign errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to persist counts")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). Metadata travels as a
// google.protobuf.Struct status detail and is restored by FromGRPCError.
package errors
