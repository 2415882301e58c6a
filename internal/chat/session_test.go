package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mandir_server/internal/assistant"
)

type fixedReplier struct {
	reply string
	// release, when non-nil, blocks SendMessage until closed. Used to hold
	// a request in flight.
	release chan struct{}
	mu      sync.Mutex
	calls   int
}

func (f *fixedReplier) SendMessage(_ context.Context, _ []assistant.Message, _ string) string {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	return f.reply
}

func TestSendAppendsBothTurns(t *testing.T) {
	st := NewStore(&fixedReplier{reply: "Om Shanti."}, nil)
	s := st.Create()

	reply, err := st.Send(context.Background(), s.ID, "What is Navaratri?")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply != "Om Shanti." {
		t.Errorf("reply = %q", reply)
	}

	msgs := s.Transcript()
	if len(msgs) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(msgs))
	}
	if msgs[0].Role != assistant.RoleUser || msgs[0].Text != "What is Navaratri?" {
		t.Errorf("first turn = %+v", msgs[0])
	}
	if msgs[1].Role != assistant.RoleModel || msgs[1].Text != "Om Shanti." {
		t.Errorf("second turn = %+v", msgs[1])
	}
}

func TestSendUnknownSession(t *testing.T) {
	st := NewStore(&fixedReplier{reply: "x"}, nil)
	if _, err := st.Send(context.Background(), "nope", "hi"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSendRejectsConcurrentRequest(t *testing.T) {
	release := make(chan struct{})
	replier := &fixedReplier{reply: "patience, child", release: release}
	st := NewStore(replier, nil)
	s := st.Create()

	firstDone := make(chan error, 1)
	go func() {
		_, err := st.Send(context.Background(), s.ID, "first")
		firstDone <- err
	}()

	// Wait until the first request is in flight.
	for {
		replier.mu.Lock()
		inFlight := replier.calls == 1
		replier.mu.Unlock()
		if inFlight {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := st.Send(context.Background(), s.ID, "second"); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent send err = %v, want ErrBusy", err)
	}

	close(release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first send error = %v", err)
	}

	// Session re-enabled after resolution.
	if _, err := st.Send(context.Background(), s.ID, "third"); err != nil {
		t.Errorf("send after resolution error = %v", err)
	}

	msgs := s.Transcript()
	if len(msgs) != 4 {
		t.Errorf("transcript length = %d, want 4 (two completed exchanges)", len(msgs))
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	st := NewStore(&fixedReplier{reply: "ok"}, nil)
	a := st.Create()
	b := st.Create()
	if a.ID == b.ID {
		t.Fatal("duplicate session ids")
	}

	if _, err := st.Send(context.Background(), a.ID, "hi"); err != nil {
		t.Fatal(err)
	}
	if len(b.Transcript()) != 0 {
		t.Error("send to session a leaked into session b")
	}
}
