package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/merakiaddr/pkg/errors"
	"github.com/agentstation/merakiaddr/pkg/logging"
)

// errorBody is the Dashboard API error envelope.
type errorBody struct {
	Errors []string `json:"errors"`
}

// DecodeResponse decodes a JSON response into the target structure.
// Non-2xx responses become *errors.APIError. A nil target discards the body.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp, body)
	}

	if target == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}

func newAPIError(resp *http.Response, body []byte) *errors.APIError {
	apiErr := &errors.APIError{
		Service:    "unknown",
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
	if resp.Request != nil && resp.Request.URL != nil {
		apiErr.Service = resp.Request.URL.Host
		apiErr.Endpoint = resp.Request.Method + " " + resp.Request.URL.Path
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil && len(eb.Errors) > 0 {
		apiErr.Errors = eb.Errors
	}
	return apiErr
}

// NextLink returns the rel=next target of the response's Link header,
// or "" when there is no further page.
func NextLink(resp *http.Response) string {
	for _, header := range resp.Header.Values("Link") {
		for _, link := range strings.Split(header, ",") {
			parts := strings.Split(link, ";")
			if len(parts) < 2 {
				continue
			}
			target := strings.TrimSpace(parts[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}
			for _, param := range parts[1:] {
				key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
					continue
				}
				if strings.Trim(strings.TrimSpace(value), `"`) == "next" {
					return target[1 : len(target)-1]
				}
			}
		}
	}
	return ""
}
