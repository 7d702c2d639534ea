package mailer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDecision(t *testing.T) {
	msg := JobDecision("c@example.com", "Carol", "Logo <design>", true, "")
	assert.Equal(t, "c@example.com", msg.To)
	assert.Contains(t, msg.Subject, "approved")
	assert.Contains(t, msg.HTML, "Logo &lt;design&gt;")
	assert.Contains(t, msg.HTML, "visible to freelancers")

	msg = JobDecision("c@example.com", "Carol", "Logo", false, "budget unclear")
	assert.Contains(t, msg.Subject, "rejected")
	assert.Contains(t, msg.HTML, "Moderator note: budget unclear")
	assert.NotContains(t, msg.HTML, "visible to freelancers")
}

func TestSMTPMailerBuild(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "u", "p", "no-reply@example.com")
	gm := m.build(Message{To: "c@example.com", Subject: "Hello", HTML: "<p>hi</p>"})

	assert.Equal(t, []string{"no-reply@example.com"}, gm.GetHeader("From"))
	assert.Equal(t, []string{"c@example.com"}, gm.GetHeader("To"))

	var buf bytes.Buffer
	_, err := gm.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Subject: Hello")
}

func TestSMTPMailerHonoursCancelledContext(t *testing.T) {
	m := NewSMTPMailer("smtp.invalid", 587, "", "", "no-reply@example.com")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Message{To: "x@example.com"}), context.Canceled)
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, LogMailer{}.Send(context.Background(), Message{To: "x@example.com"}))
}
