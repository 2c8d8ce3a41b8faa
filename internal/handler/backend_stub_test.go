package handler

import (
	"context"
	"encoding/json"
)

type backendStub struct {
	resp        any
	err         error
	calls       int
	lastPath    string
	lastPayload any
}

func (s *backendStub) PostJSON(ctx context.Context, path string, payload any, out any, requestID string) error {
	s.calls++
	s.lastPath = path
	s.lastPayload = payload
	if s.err != nil {
		return s.err
	}
	if s.resp != nil && out != nil {
		data, err := json.Marshal(s.resp)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, out)
	}
	return nil
}
