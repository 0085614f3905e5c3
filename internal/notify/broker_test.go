package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return ""
	}
}

func TestTopic(t *testing.T) {
	require.Equal(t, "/batch/abc", Topic("abc"))
}

func TestBroker_DeliversToSubscribers(t *testing.T) {
	b := NewBroker(4)

	ch1, cancel1 := b.Subscribe("p1")
	defer cancel1()
	ch2, cancel2 := b.Subscribe("p1")
	defer cancel2()
	other, cancelOther := b.Subscribe("p2")
	defer cancelOther()

	b.Publish("p1", MessageSuccess)

	require.Equal(t, MessageSuccess, receive(t, ch1))
	require.Equal(t, MessageSuccess, receive(t, ch2))
	select {
	case msg := <-other:
		t.Fatalf("unexpected message on other topic: %q", msg)
	default:
	}
}

func TestBroker_LateSubscriberGetsRetainedMessage(t *testing.T) {
	b := NewBroker(1)
	b.Publish("p1", "ERROR: Unable to parse line x")

	ch, cancel := b.Subscribe("p1")
	defer cancel()

	require.Equal(t, "ERROR: Unable to parse line x", receive(t, ch))
}

func TestBroker_CancelUnsubscribesAndCloses(t *testing.T) {
	b := NewBroker(1)
	ch, cancel := b.Subscribe("p1")
	require.Equal(t, 1, b.Subscribers("p1"))

	cancel()
	cancel()

	require.Equal(t, 0, b.Subscribers("p1"))
	_, ok := <-ch
	require.False(t, ok)

	// Publishing after cancel must not panic on the closed channel.
	b.Publish("p1", MessageSuccess)
}

func TestBroker_FullBufferDoesNotBlock(t *testing.T) {
	b := NewBroker(1)
	ch, cancel := b.Subscribe("p1")
	defer cancel()

	done := make(chan struct{})
	go func() {
		b.Publish("p1", "first")
		b.Publish("p1", "second")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	require.Equal(t, "first", receive(t, ch))
}

func TestBroker_EvictsIdleTopics(t *testing.T) {
	b := NewBroker(1)
	b.maxRetained = 2

	_, cancel := b.Subscribe("live")
	defer cancel()
	b.Publish("a", "x")
	b.Publish("b", "y")
	b.Publish("c", "z")

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Len(t, b.topics, 2)
	assert.Contains(t, b.topics, "live")
	assert.Contains(t, b.topics, "c")
}

func TestMultiSinkAndRecorder(t *testing.T) {
	r1 := NewRecorder()
	r2 := NewRecorder()
	sink := MultiSink{r1, LogSink{}, r2}

	sink.Publish("p1", MessageSuccess)

	require.Equal(t, []string{MessageSuccess}, r1.Messages("p1"))
	require.Equal(t, []string{MessageSuccess}, r2.Messages("p1"))
	require.Empty(t, r1.Messages("p2"))
}

func TestHandleStream_RetainedTerminalMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b := NewBroker(1)
	b.Publish("p1", MessageSuccess)

	r := gin.New()
	b.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/batch/p1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, strings.HasPrefix(resp.Header().Get("Content-Type"), "text/event-stream"),
		"content type %q", resp.Header().Get("Content-Type"))
	require.Contains(t, resp.Body.String(), "event:message")
	require.Contains(t, resp.Body.String(), "data:success")
	require.Equal(t, 0, b.Subscribers("p1"))
}

func TestHandleStream_ClientGoesAway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b := NewBroker(1)

	r := gin.New()
	b.RegisterRoutes(r)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/batch/p1", nil).WithContext(ctx)
	resp := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(resp, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return b.Subscribers("p1") == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not end after the client went away")
	}
	require.Equal(t, 0, b.Subscribers("p1"))
}

func TestBroker_PublishKeepsStaleTopicRetained(t *testing.T) {
	b := NewBroker(1)
	b.maxRetained = 2

	_, cancelP1 := b.Subscribe("p1")
	b.Publish("p2", MessageSuccess)
	b.Publish("p3", MessageSuccess) // p2 is the oldest idle topic
	_, cancelP4 := b.Subscribe("p4")
	cancelP1()
	cancelP4()

	// p1 is now the oldest idle topic and the store is over capacity.
	b.Publish("p1", MessageSuccess)

	ch, cancel := b.Subscribe("p1")
	defer cancel()
	require.Equal(t, MessageSuccess, receive(t, ch))
}
