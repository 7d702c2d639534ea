package mailer

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"gopkg.in/gomail.v2"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

// SMTPMailer sends mail through a gomail dialer. A new connection is opened
// per message.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(m.build(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

func (m *SMTPMailer) build(msg Message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)
	return gm
}

// LogMailer only logs. It is used when SMTP is not configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	slog.Info("mail not sent, smtp disabled", "to", msg.To, "subject", msg.Subject)
	return nil
}

// JobDecision renders the notice sent to a client when an admin approves or
// rejects their job.
func JobDecision(to, name, jobTitle string, approved bool, note string) Message {
	verdict := "rejected"
	if approved {
		verdict = "approved"
	}
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your job <strong>%s</strong> has been %s.</p>",
		html.EscapeString(name), html.EscapeString(jobTitle), verdict)
	if note != "" {
		body += fmt.Sprintf("<p>Moderator note: %s</p>", html.EscapeString(note))
	}
	if approved {
		body += "<p>It is now visible to freelancers.</p>"
	}
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Your job \"%s\" was %s", jobTitle, verdict),
		HTML:    body,
	}
}
