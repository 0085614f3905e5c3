package notify

import (
	"log/slog"
	"sync"
)

// MessageSuccess is the terminal message for a run that completed without error.
const MessageSuccess = "success"

// Sink receives process-scoped status messages from the ingestion pipeline.
type Sink interface {
	Publish(processID, message string)
}

// Topic returns the channel name a process's messages are published on.
func Topic(processID string) string {
	return "/batch/" + processID
}

// LogSink writes every published message to the default slog logger.
type LogSink struct{}

func (LogSink) Publish(processID, message string) {
	slog.Info("[Notify] Published process message",
		"process_id", processID,
		"topic", Topic(processID),
		"message", message,
	)
}

// MultiSink fans a message out to every wrapped sink in order.
type MultiSink []Sink

func (m MultiSink) Publish(processID, message string) {
	for _, s := range m {
		s.Publish(processID, message)
	}
}

// Recorder is a Sink that keeps every message it receives. Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages map[string][]string
}

func NewRecorder() *Recorder {
	return &Recorder{messages: make(map[string][]string)}
}

func (r *Recorder) Publish(processID, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[processID] = append(r.messages[processID], message)
}

// Messages returns a copy of everything published for processID.
func (r *Recorder) Messages(processID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages[processID]...)
}
