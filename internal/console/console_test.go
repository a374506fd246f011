package console

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestPromptForm(t *testing.T) {
	in := strings.NewReader("Charizard Box\n\nold name\n")
	c := New(in, &strings.Builder{})

	answers, err := c.PromptForm(context.Background(), Form{
		Title: "Test",
		Fields: []Field{
			{Name: "name", Label: "Name", Required: true},
			{Name: "keep", Label: "Keep", Default: "unchanged"},
			{Name: "edit", Label: "Edit", Default: "new name"},
		},
	})
	if err != nil {
		t.Fatalf("PromptForm: %v", err)
	}

	if answers["name"] != "Charizard Box" {
		t.Errorf("name = %q", answers["name"])
	}
	if answers["keep"] != "unchanged" {
		t.Errorf("empty input did not fall back to default: %q", answers["keep"])
	}
	if answers["edit"] != "old name" {
		t.Errorf("edit = %q", answers["edit"])
	}
}

func TestPromptFormReAsksRequired(t *testing.T) {
	in := strings.NewReader("\n\nfinally\n")
	c := New(in, &strings.Builder{})

	answers, err := c.PromptForm(context.Background(), Form{
		Fields: []Field{{Name: "q", Label: "Q", Required: true}},
	})
	if err != nil {
		t.Fatalf("PromptForm: %v", err)
	}
	if answers["q"] != "finally" {
		t.Errorf("q = %q", answers["q"])
	}
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	in := strings.NewReader("0\nx\n3\n2\n")
	c := New(in, &strings.Builder{})

	chosen, err := c.Select(context.Background(), "Pick one", []Option{
		{Label: "first"},
		{Label: "second"},
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if chosen != 1 {
		t.Errorf("chosen = %d, want 1", chosen)
	}
}

func TestConfirm(t *testing.T) {
	in := strings.NewReader("maybe\nYES\nn\n")
	c := New(in, &strings.Builder{})

	ok, err := c.Confirm(context.Background(), "Sure?")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !ok {
		t.Error("YES not accepted")
	}

	ok, err = c.Confirm(context.Background(), "Sure?")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if ok {
		t.Error("n not treated as decline")
	}
}

func TestReadLineHonorsContext(t *testing.T) {
	// A reader that never delivers a line.
	blocked, _ := newBlockedReader()
	c := New(blocked, &strings.Builder{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.ReadLine(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

type blockedReader struct {
	unblock chan struct{}
}

func newBlockedReader() (*blockedReader, func()) {
	r := &blockedReader{unblock: make(chan struct{})}
	return r, func() { close(r.unblock) }
}

func (r *blockedReader) Read(p []byte) (int, error) {
	<-r.unblock
	return 0, nil
}
