package acl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/go-fdc/internal/adapters/clients"
	"github.com/jsamuelsen/go-fdc/pkg/food"
)

// ErrorDetail is one error reported by the FDC API. The API sends either an
// object with code and message or a bare code string.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UnmarshalJSON accepts both the object and the bare string form.
func (d *ErrorDetail) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		d.Code = code
		return nil
	}

	type plain ErrorDetail

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*d = ErrorDetail(p)

	return nil
}

// ParseEnvelope inspects a response body and either returns it unchanged as
// a success payload or returns the error it carries. The API uses two error
// shapes:
//
//	{"errors": {"error": [{"code": "...", "message": "..."}]}}  parameter errors
//	{"error": {"code": "...", "message": "..."}}                rate limit and key errors
//
// A body that is not JSON yields a *food.TransportError carrying the HTTP
// status. In a JSON object the "errors" key is checked first, then "error".
// Any other JSON value is a success.
func ParseEnvelope(status int, body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)

	if !json.Valid(trimmed) {
		return nil, food.NewTransportError(status, statusError(status, trimmed))
	}

	if trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, food.NewTransportError(status, err)
	}

	if raw, ok := obj["errors"]; ok {
		return nil, errorFromList(status, raw)
	}

	if raw, ok := obj["error"]; ok {
		return nil, errorFromDetail(status, raw)
	}

	return json.RawMessage(trimmed), nil
}

// errorFromList maps the {"error": [...]} value of the "errors" key. The first
// element decides the error kind.
func errorFromList(status int, raw json.RawMessage) error {
	var list struct {
		Error []ErrorDetail `json:"error"`
	}

	if err := json.Unmarshal(raw, &list); err != nil || list.Error == nil {
		return errorFromDetail(status, raw)
	}

	if len(list.Error) == 0 {
		return food.NewAPIError(status, "", "empty error list")
	}

	d := list.Error[0]

	return food.ErrorForCode(status, d.Code, d.Message)
}

func errorFromDetail(status int, raw json.RawMessage) error {
	var d ErrorDetail
	if err := json.Unmarshal(raw, &d); err != nil {
		return food.NewAPIError(status, "", string(raw))
	}

	if d.Code == "" && d.Message == "" {
		return food.NewAPIError(status, "", string(raw))
	}

	return food.ErrorForCode(status, d.Code, d.Message)
}

// ReadEnvelope reads a response body and runs it through ParseEnvelope.
// The body is closed.
func ReadEnvelope(resp *http.Response) (json.RawMessage, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, food.NewTransportError(resp.StatusCode, fmt.Errorf("reading response body: %w", err))
	}

	return ParseEnvelope(resp.StatusCode, body)
}

// MapClientError translates an instrumented client failure into a
// *food.TransportError, keeping the underlying cause reachable.
func MapClientError(err error) error {
	if err == nil {
		return nil
	}

	var tErr *food.TransportError
	if errors.As(err, &tErr) {
		return err
	}

	if errors.Is(err, clients.ErrRequestFailed) {
		return food.NewTransportError(0, err)
	}

	return food.NewTransportError(0, fmt.Errorf("%w: %w", clients.ErrRequestFailed, err))
}

// statusError describes an unparseable body the way an HTTP status check
// would, so 4xx and 5xx responses read as status failures.
func statusError(status int, body []byte) error {
	var syntaxErr error
	if len(body) == 0 {
		syntaxErr = errors.New("empty response body")
	} else {
		var v any
		syntaxErr = json.Unmarshal(body, &v)
	}

	if status >= http.StatusBadRequest {
		return fmt.Errorf("%d %s: %w", status, http.StatusText(status), syntaxErr)
	}

	return fmt.Errorf("decoding response: %w", syntaxErr)
}
