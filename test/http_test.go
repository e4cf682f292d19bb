//go:build e2e_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// do sends a JSON request to the test server and returns the status code and
// the raw response body.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("close response body: %s", err)
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path string, body any, wantStatus int, out any) {
	status, respBytes := s.do(ctx, method, path, body)
	s.Require().Equal(wantStatus, status, string(respBytes))
	if out != nil {
		s.Require().NoError(json.Unmarshal(respBytes, out), string(respBytes))
	}
}
