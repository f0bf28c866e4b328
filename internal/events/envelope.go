package events

import "encoding/json"

// Envelope is decoded first so consumers can dispatch on event_type.
type Envelope struct {
	EventType string `json:"event_type"`
	RequestID string `json:"request_id,omitempty"`
}

func PeekEnvelope(payload []byte) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(payload, &env)
	return env, err
}

// Topics lists everything the notification consumer subscribes to.
func Topics() []string {
	return []string{
		EmployeeLifecycleTopic,
		ContractLifecycleTopic,
		LeaveBalanceTopic,
	}
}
