package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
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
			message:  "session not found",
			expected: "NOT_FOUND: session not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "input is required",
			expected: "INVALID_ARGUMENT: input is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("encounter not found").
		WithMeta("encounter_id", "enc_1")

	s.Assert().Equal("enc_1", err.Meta["encounter_id"])
	s.Assert().Equal("enc_1", errors.GetMeta(err)["encounter_id"])
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	baseErr := fmt.Errorf("dial tcp: connection refused")
	wrapped := errors.Wrap(baseErr, "failed to save session")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to save session", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapKeepsCode() {
	base := errors.NotFound("session not found").WithMeta("session_id", "s1")
	wrapped := errors.Wrapf(base, "load %s", "s1")

	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().Equal("s1", wrapped.Meta["session_id"])
	s.Assert().True(errors.Is(wrapped, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeDataLoss, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("bad json"), errors.CodeDataLoss, "corrupt snapshot")
	s.Assert().True(errors.IsDataLoss(wrapped))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("wrong phase")))
}

func (s *ErrorsTestSuite) TestRetryable() {
	s.Assert().True(errors.CodeUnavailable.Retryable())
	s.Assert().False(errors.CodeNotFound.Retryable())
}
