package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// metaCodeKey carries our code inside the status detail so codes without a
// one-to-one gRPC mapping survive the round trip.
const metaCodeKey = "_code"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if details := detailsFromMeta(customErr.Code, customErr.Meta); details != nil {
		if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		meta := details.AsMap()
		if code, ok := meta[metaCodeKey].(string); ok {
			customErr.Code = Code(code)
			delete(meta, metaCodeKey)
		}
		if len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// detailsFromMeta builds the status detail. Values structpb cannot represent
// are stringified.
func detailsFromMeta(code Code, meta map[string]any) *structpb.Struct {
	if len(meta) == 0 {
		return nil
	}

	fields := make(map[string]*structpb.Value, len(meta)+1)
	fields[metaCodeKey] = structpb.NewStringValue(string(code))
	for k, v := range meta {
		value, err := structpb.NewValue(v)
		if err != nil {
			value = structpb.NewStringValue(fmt.Sprint(v))
		}
		fields[k] = value
	}
	return &structpb.Struct{Fields: fields}
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeResourceExhausted:
		return codes.ResourceExhausted
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.ResourceExhausted:
		return CodeResourceExhausted
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	default:
		return CodeInternal
	}
}
