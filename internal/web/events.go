package web

import "encoding/json"

// WebSocket event types
const (
	EventJobCreated     = "job.created"
	EventJobUpdated     = "job.updated"
	EventJobDeleted     = "job.deleted"
	EventInquiryRead    = "inquiry.read"
	EventInquiryDeleted = "inquiry.deleted"
)

// WSEvent is the envelope for every message sent over /ws.
type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// JobEventPayload carries the affected posting.
type JobEventPayload struct {
	JobID   string `json:"jobId"`
	Profile string `json:"profile,omitempty"`
}

// InquiryEventPayload carries the affected inquiry plus the badge value so
// every tab can update its sidebar counter without an extra round trip.
type InquiryEventPayload struct {
	InquiryID   string `json:"inquiryId"`
	UnreadCount int    `json:"unreadCount"`
}

// JobEvent builds a job lifecycle message.
func JobEvent(eventType, jobID, profile string) []byte {
	b, _ := json.Marshal(WSEvent{
		Type:    eventType,
		Payload: JobEventPayload{JobID: jobID, Profile: profile},
	})
	return b
}

// InquiryEvent builds an inquiry lifecycle message.
func InquiryEvent(eventType, inquiryID string, unreadCount int) []byte {
	b, _ := json.Marshal(WSEvent{
		Type:    eventType,
		Payload: InquiryEventPayload{InquiryID: inquiryID, UnreadCount: unreadCount},
	})
	return b
}
