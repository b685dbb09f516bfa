package email

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"time"
)

// SentMessages records every message the console provider accepted.
// Tests read it; the mutex guards concurrent sends from event subscribers.
var (
	SentMessages []Message
	sentMu       sync.Mutex
)

type consoleService struct {
	from          string
	fromName      string
	disableOutput bool
}

var _ Service = (*consoleService)(nil)

// NewConsoleService writes rendered messages to the process log instead of
// delivering them.
func NewConsoleService(cfg Config) Service {
	return &consoleService{
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

// NewConsoleServiceSilent behaves like NewConsoleService without log output.
// Used in tests that only care about SentMessages.
func NewConsoleServiceSilent(cfg Config) Service {
	return &consoleService{
		from:          cfg.From,
		fromName:      cfg.FromName,
		disableOutput: true,
	}
}

func (svc *consoleService) Name() string { return "console" }

func (svc *consoleService) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("message has no recipient")
	}

	body := new(strings.Builder)

	_, _ = fmt.Fprintf(body, "From: %s <%s>\r\n", svc.fromName, svc.from)
	_, _ = fmt.Fprint(body, "MIME-Version: 1.0\r\n")
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", msg.Subject)
	_, _ = fmt.Fprintf(body, "To: %s\r\n", msg.To)

	altW := multipart.NewWriter(body)
	_, _ = fmt.Fprintf(body, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", altW.Boundary())

	w, err := altW.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain"}})
	if err != nil {
		return fmt.Errorf("creating text/plain part: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s\r\n", msg.TextBody)

	if msg.HTMLBody != "" {
		w, err = altW.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html"}})
		if err != nil {
			return fmt.Errorf("creating text/html part: %w", err)
		}
		_, _ = fmt.Fprintf(w, "%s\r\n", msg.HTMLBody)
	}
	if err := altW.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	if !svc.disableOutput {
		log.Println(body.String())
	}

	sentMu.Lock()
	SentMessages = append(SentMessages, msg)
	sentMu.Unlock()
	return nil
}

// ResetSentMessages clears the recorded messages between tests.
func ResetSentMessages() {
	sentMu.Lock()
	SentMessages = nil
	sentMu.Unlock()
}

// SentMessageCount returns the number of recorded messages.
func SentMessageCount() int {
	sentMu.Lock()
	defer sentMu.Unlock()
	return len(SentMessages)
}

// LastSentMessage returns the most recently recorded message.
func LastSentMessage() (Message, bool) {
	sentMu.Lock()
	defer sentMu.Unlock()
	if len(SentMessages) == 0 {
		return Message{}, false
	}
	return SentMessages[len(SentMessages)-1], true
}
