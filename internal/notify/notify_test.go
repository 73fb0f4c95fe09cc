package notify

import "testing"

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	t.Run("channel name", func(t *testing.T) {
		t.Parallel()
		msg, err := buildMessage("@friends", "hello")
		if err != nil {
			t.Fatal(err)
		}
		if msg.ChannelUsername != "@friends" || msg.Text != "hello" {
			t.Errorf("msg = %+v", msg)
		}
	})

	t.Run("numeric chat id", func(t *testing.T) {
		t.Parallel()
		msg, err := buildMessage(" 123456 ", "hello")
		if err != nil {
			t.Fatal(err)
		}
		if msg.ChatID != 123456 || msg.Text != "hello" {
			t.Errorf("msg = %+v", msg)
		}
	})

	t.Run("non numeric recipient", func(t *testing.T) {
		t.Parallel()
		if _, err := buildMessage("friends", "hello"); err == nil {
			t.Error("expected error for non numeric recipient without @")
		}
	})

	t.Run("blank recipient or text", func(t *testing.T) {
		t.Parallel()
		if _, err := buildMessage("", "hello"); err == nil {
			t.Error("expected error for blank recipient")
		}
		if _, err := buildMessage("@friends", "  "); err == nil {
			t.Error("expected error for blank text")
		}
	})
}
