package realmclient

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// ErrRequestFailed is matched (errors.Is) by every error caused by the server
// rejecting a request or the request not completing. Validation errors caught
// before sending are *model.ValidationError instead.
var ErrRequestFailed = errors.New("request failed")

// RequestError carries what the server said about a failed request.
type RequestError struct {
	StatusCode int                 `json:"-"`
	Message    string              `json:"message"`
	Fields     map[string][]string `json:"fields"`
}

func (e *RequestError) Error() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "%s (HTTP Status: %d)", ErrRequestFailed, e.StatusCode)
	if e.Message != "" {
		_, _ = fmt.Fprintf(&b, ": %s", e.Message)
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(&b, "; %s: %s", name, strings.Join(e.Fields[name], ", "))
	}

	return b.String()
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

func toErrorFromResponse(resp *resty.Response) error {
	reqErr := &RequestError{StatusCode: resp.StatusCode()}
	if err := json.Unmarshal(resp.Body(), reqErr); err != nil || reqErr.Message == "" {
		reqErr.Message = strings.TrimSpace(string(resp.Body()))
	}

	return reqErr
}

func transportError(err error) error {
	return errors.Wrapf(ErrRequestFailed, "%s", err)
}
