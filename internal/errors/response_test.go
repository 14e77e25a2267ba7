package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "trace-123"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	resp := NewErrorResponse(AccountNotFound, s.traceID)

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("ACCOUNT_001", resp.Error.Code)
	s.Equal("Account not found", resp.Error.Message)
	s.Equal(s.traceID, resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	resp := NewErrorResponse(ScopeInvalid, s.traceID,
		WithDetails("account_id: abc"),
		WithMessage("bad scope"),
	)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("bad scope", resp.Error.Message)
	s.Equal([]string{"account_id: abc"}, resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	resp := NewValidationErrorFromList([]string{"page: must be numeric"}, s.traceID)

	s.Equal(string(ValidationGeneral), resp.Error.Code)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Len(resp.Error.Details, 1)
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internal := stderrors.New("pq: connection refused on 10.0.0.5")
	resp, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.NotContains(resp.Error.Message, "10.0.0.5")
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestToJSON_EnvelopeShape() {
	resp := NewErrorResponse(UserNotFound, s.traceID, WithDetails("user 9"))

	body, err := resp.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.Equal(float64(404), decoded["statusCode"])

	detail, ok := decoded["error"].(map[string]interface{})
	s.Require().True(ok)
	s.Equal("USER_001", detail["code"])
	s.Equal("trace-123", detail["trace_id"])
	s.Equal([]interface{}{"user 9"}, detail["details"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := map[ErrorCode]int{
		ScopeInvalid:               http.StatusBadRequest,
		ValidationInvalidDate:      http.StatusBadRequest,
		AuthMissingToken:           http.StatusUnauthorized,
		AuthInsufficientPermission: http.StatusForbidden,
		CustomerNotFound:           http.StatusNotFound,
		ExportTooLarge:             http.StatusUnprocessableEntity,
		SystemRateLimitExceeded:    http.StatusTooManyRequests,
		SystemRouteNotFound:        http.StatusNotFound,
		SystemInternalError:        http.StatusInternalServerError,
		ErrorCode("UNKNOWN"):       http.StatusInternalServerError,
	}

	for code, expected := range testCases {
		s.Equal(expected, GetHTTPStatus(code), string(code))
	}
}

func (s *ResponseTestSuite) TestClientAndServerClassification() {
	s.True(NewErrorResponse(AccountNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(AccountNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemDatabaseError, s.traceID).IsServerError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	resp := NewErrorResponse(CustomerNotFound, s.traceID)
	s.Equal("[CUSTOMER_001] Customer not found (trace: trace-123)", resp.String())
}
