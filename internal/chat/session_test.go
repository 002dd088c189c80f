package chat_test

import (
	"testing"
	"time"

	"casa_schuck/internal/chat"
)

var script = []string{"first reply", "second reply"}

func TestSend_RepliesArriveInScriptOrder(t *testing.T) {
	replies := make(chan chat.Message, 4)
	s := chat.NewSession("welcome", script,
		chat.WithReplyDelay(5*time.Millisecond),
		chat.WithOnReply(func(m chat.Message) { replies <- m }),
	)
	defer s.Close()

	s.Send("hello")
	s.Send("anyone there?")
	s.Send("one more") // cycles back to the first scripted reply

	want := []string{"first reply", "second reply", "first reply"}
	for _, expect := range want {
		select {
		case m := <-replies:
			if m.Role != chat.RoleBot || m.Text != expect {
				t.Fatalf("got %q want %q", m.Text, expect)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q", expect)
		}
	}

	msgs := s.Messages()
	if msgs[0].Role != chat.RoleBot || msgs[0].Text != "welcome" {
		t.Fatalf("greeting missing: %+v", msgs[0])
	}
	// greeting + 3 user + 3 bot
	if len(msgs) != 7 {
		t.Fatalf("expected 7 messages, got %d", len(msgs))
	}
}

func TestClose_CancelsPendingReply(t *testing.T) {
	s := chat.NewSession("welcome", script, chat.WithReplyDelay(30*time.Millisecond))

	s.Send("hello")
	s.Close()

	time.Sleep(80 * time.Millisecond)

	msgs := s.Messages()
	for _, m := range msgs[1:] {
		if m.Role == chat.RoleBot {
			t.Fatalf("reply delivered after teardown: %+v", m)
		}
	}
}

func TestSend_AfterCloseIsNoOp(t *testing.T) {
	s := chat.NewSession("welcome", script, chat.WithReplyDelay(time.Millisecond))
	s.Close()
	s.Send("hello")

	if got := len(s.Messages()); got != 1 {
		t.Fatalf("expected only the greeting, got %d messages", got)
	}
}

func TestSend_IgnoresEmptyInput(t *testing.T) {
	s := chat.NewSession("welcome", script, chat.WithReplyDelay(time.Millisecond))
	defer s.Close()
	s.Send("")

	if got := len(s.Messages()); got != 1 {
		t.Fatalf("expected only the greeting, got %d messages", got)
	}
}
