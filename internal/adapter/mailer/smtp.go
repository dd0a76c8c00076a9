// Package mailer delivers plain-text email over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/daybook-backend/internal/config"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends messages through one SMTP server.
type SMTP struct {
	addr string
	from string
	auth smtp.Auth
	send sendFunc
	log  *slog.Logger
}

// NewSMTP creates an SMTP mailer from cfg. Authentication is used only when
// a username is configured.
func NewSMTP(log *slog.Logger, cfg config.SMTPConfig) *SMTP {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTP{
		addr: cfg.Host + ":" + strconv.Itoa(cfg.Port),
		from: cfg.From,
		auth: auth,
		send: smtp.SendMail,
		log:  log.With("adapter", "smtp"),
	}
}

// Send delivers one plain-text message to a single recipient.
func (m *SMTP) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(m.from, to, subject, body, time.Now())
	if err := m.send(m.addr, m.auth, envelopeAddress(m.from), []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	m.log.DebugContext(ctx, "mail sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}

// Log is a mailer that only logs messages. It stands in when no SMTP server
// is configured.
type Log struct {
	log *slog.Logger
}

// NewLog creates a logging mailer.
func NewLog(log *slog.Logger) *Log {
	return &Log{log: log.With("adapter", "mail_log")}
}

// Send logs the message and reports success.
func (l *Log) Send(ctx context.Context, to, subject, body string) error {
	l.log.InfoContext(ctx, "mail not sent, smtp disabled",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(body)),
	)
	return nil
}

func buildMessage(from, to, subject, body string, now time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	fmt.Fprintf(&b, "Date: %s\r\n", now.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// envelopeAddress extracts the bare address from "Name <addr>".
func envelopeAddress(from string) string {
	if i := strings.LastIndexByte(from, '<'); i >= 0 {
		if j := strings.IndexByte(from[i:], '>'); j > 0 {
			return from[i+1 : i+j]
		}
	}
	return from
}

func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
