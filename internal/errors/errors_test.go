package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/logistics-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "container not found",
			expected: "NOT_FOUND: container not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "negative count",
			expected: "INVALID_ARGUMENT: negative count",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load counts")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load counts", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("no snapshot").WithMeta("node_id", "node-1")
	wrapped := errors.Wrap(baseErr, "failed to reserve stock")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("node-1", wrapped.Meta["node_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.InvalidArgument("bad record").WithMeta("record_index", 2)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeDataLoss, "stored snapshot is corrupted")

	s.Equal(errors.CodeDataLoss, wrapped.Code)
	s.Equal(2, wrapped.Meta["record_index"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestIs() {
	s.True(errors.Is(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound("c")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("friendly").WithMeta("key", "value")
	std := fmt.Errorf("standard error")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeInternal, errors.GetCode(std))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("value", errors.GetMeta(err)["key"])
	s.Nil(errors.GetMeta(std))
	s.Equal("friendly", errors.GetMessage(err))
	s.Equal("standard error", errors.GetMessage(std))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsMeta() {
	err := errors.InvalidArgument("record count cannot be negative").
		WithMeta("record_index", 3).
		WithMeta("fields", map[string][]string{"count": {"negative"}})

	grpcErr := errors.ToGRPCError(err)
	s.Require().Error(grpcErr)

	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("record count cannot be negative", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal(float64(3), errors.GetMeta(back)["record_index"])
	s.NotEmpty(errors.GetMeta(back)["fields"])
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsUnmappedCode() {
	err := errors.DataLossf("snapshot %s is corrupted", "node-1").WithMeta("node_id", "node-1")

	back := errors.FromGRPCError(errors.ToGRPCError(err))
	s.True(errors.IsDataLoss(back))
}

func (s *ErrorsTestSuite) TestFromGRPCErrorPlainStatus() {
	err := errors.FromGRPCError(status.Error(codes.NotFound, "missing"))
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMessage(err))
	s.Nil(errors.GetMeta(err))
}

func (s *ErrorsTestSuite) TestToGRPCErrorForeignError() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}
