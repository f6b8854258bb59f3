package space

import (
	"bytes"
	"encoding/json"
)

const CurrentScheduleVersion = 1

// Schedule is the availability payload of a space. The booking core stores and
// returns it untouched; only its envelope (version + JSON rules) is checked.
type Schedule struct {
	version int
	rules   json.RawMessage
}

type scheduleEnvelope struct {
	Version int             `json:"version"`
	Rules   json.RawMessage `json:"rules"`
}

func NewSchedule(version int, rules json.RawMessage) (*Schedule, error) {
	if version < 1 {
		return nil, ErrInvalidSchedule
	}
	trimmed := bytes.TrimSpace(rules)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, ErrInvalidSchedule
	}
	return &Schedule{version: version, rules: append(json.RawMessage(nil), trimmed...)}, nil
}

// ParseSchedule decodes the stored envelope.
func ParseSchedule(raw []byte) (*Schedule, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var env scheduleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, ErrInvalidSchedule
	}
	return NewSchedule(env.Version, env.Rules)
}

func (s *Schedule) Version() int           { return s.version }
func (s *Schedule) Rules() json.RawMessage { return s.rules }

func (s *Schedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(scheduleEnvelope{Version: s.version, Rules: s.rules})
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	parsed, err := ParseSchedule(data)
	if err != nil {
		return err
	}
	if parsed == nil {
		return ErrInvalidSchedule
	}
	*s = *parsed
	return nil
}
