package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// baseEmailData feeds the shared wrapper around every message body.
type baseEmailData struct {
	Content template.HTML
	Subject string
}

const baseEmailTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #1f2937; margin: 0; padding: 0; background-color: #f3f4f6; }
        .email-wrapper { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
        .header { background-color: #312e81; padding: 24px 32px; color: #ffffff; font-size: 20px; font-weight: 700; }
        .content { padding: 32px; }
        .footer { padding: 24px 32px; color: #6b7280; font-size: 13px; border-top: 1px solid #e5e7eb; }
        .button { display: inline-block; background-color: #4f46e5; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none; }
    </style>
</head>
<body>
    <div class="email-wrapper">
        <div class="header">Faraday AI</div>
        <div class="content">{{.Content}}</div>
        <div class="footer">Faraday AI &middot; AI assistants for education</div>
    </div>
</body>
</html>`

var baseTmpl = template.Must(template.New("base").Parse(baseEmailTemplate))

// renderBase wraps content HTML in the shared shell.
func renderBase(subject string, content string) (string, error) {
	var buf bytes.Buffer
	err := baseTmpl.Execute(&buf, baseEmailData{
		Subject: subject,
		Content: template.HTML(content),
	})
	if err != nil {
		return "", fmt.Errorf("rendering base email template: %w", err)
	}
	return buf.String(), nil
}

// WelcomeMessage greets a newly registered account.
func WelcomeMessage(to, name string) (Message, error) {
	subject := "Welcome to Faraday AI"
	content := fmt.Sprintf(`
<p>Hi %s,</p>
<p>Your Faraday AI account is ready. Sign in any time to pick up where you left off.</p>
<p><a class="button" href="https://faraday.ai/">Open Faraday AI</a></p>`,
		template.HTMLEscapeString(displayOrFriend(name)))

	html, err := renderBase(subject, content)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:       to,
		ToName:   name,
		Subject:  subject,
		HTMLBody: html,
		TextBody: fmt.Sprintf("Hi %s,\n\nYour Faraday AI account is ready. Sign in any time at https://faraday.ai/.\n", displayOrFriend(name)),
	}, nil
}

// ContactNotification tells the site team about a new contact request.
func ContactNotification(adminEmail, name, fromEmail, organization, message string) (Message, error) {
	subject := fmt.Sprintf("New contact request from %s", name)
	content := fmt.Sprintf(`
<p>A new contact request arrived.</p>
<p><strong>Name:</strong> %s<br>
<strong>Email:</strong> %s<br>
<strong>Organization:</strong> %s</p>
<p>%s</p>`,
		template.HTMLEscapeString(name),
		template.HTMLEscapeString(fromEmail),
		template.HTMLEscapeString(orDash(organization)),
		template.HTMLEscapeString(message))

	html, err := renderBase(subject, content)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:       adminEmail,
		Subject:  subject,
		HTMLBody: html,
		TextBody: fmt.Sprintf("New contact request\n\nName: %s\nEmail: %s\nOrganization: %s\n\n%s\n", name, fromEmail, orDash(organization), message),
	}, nil
}

// WaitlistConfirmation acknowledges a waitlist signup for a feature.
func WaitlistConfirmation(to, feature string) (Message, error) {
	subject := "You're on the list"
	content := fmt.Sprintf(`
<p>Thanks for your interest in <strong>%s</strong>.</p>
<p>You're on the waitlist. We will email you the moment it opens up.</p>`,
		template.HTMLEscapeString(feature))

	html, err := renderBase(subject, content)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:       to,
		Subject:  subject,
		HTMLBody: html,
		TextBody: fmt.Sprintf("Thanks for your interest in %s. You're on the waitlist; we'll email you the moment it opens up.\n", feature),
	}, nil
}

// DigestEntry is one waitlist signup row in the admin digest.
type DigestEntry struct {
	Email   string
	Feature string
}

// WaitlistDigestMessage summarizes recent waitlist activity for the site team.
func WaitlistDigestMessage(adminEmail string, total int64, entries []DigestEntry) (Message, error) {
	subject := fmt.Sprintf("Waitlist digest: %d new signups", total)

	var rows bytes.Buffer
	var plain bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&rows, "<tr><td style=\"padding:4px 12px 4px 0\">%s</td><td>%s</td></tr>",
			template.HTMLEscapeString(e.Email), template.HTMLEscapeString(e.Feature))
		fmt.Fprintf(&plain, "  %s - %s\n", e.Email, e.Feature)
	}

	content := fmt.Sprintf(`
<p><strong>%d</strong> new waitlist signups since the last digest.</p>
<table>%s</table>`, total, rows.String())

	html, err := renderBase(subject, content)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:       adminEmail,
		Subject:  subject,
		HTMLBody: html,
		TextBody: fmt.Sprintf("%d new waitlist signups since the last digest.\n\n%s", total, plain.String()),
	}, nil
}

func displayOrFriend(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
