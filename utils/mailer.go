package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SMTPConfigured reports whether the full SMTP env set is present. When it is
// not, senders fall back to mock logging; cmd/mailtest treats it as fatal.
func SMTPConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" &&
		os.Getenv("SMTP_PORT") != "" &&
		os.Getenv("SMTP_USERNAME") != "" &&
		os.Getenv("SMTP_PASSWORD") != ""
}

func sanitizeHeader(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

func ensureScheme(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "https://" + strings.TrimLeft(link, "/")
}

// buildMultipart assembles a multipart/alternative message with plain text
// and HTML bodies.
func buildMultipart(from, to, subject, plainBody, htmlBody string) []byte {
	boundary := "----=_TRAVEL_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return []byte(sb.String())
}

func sendMail(to, subject, plainBody, htmlBody string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Travel Desk")

	if !SMTPConfigured() {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", MaskEmail(to), subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	msg := buildMultipart(from, to, subject, plainBody, htmlBody)
	if err := smtp.SendMail(addr, auth, smtpUser, []string{to}, msg); err != nil {
		log.Printf("Failed to send email to %s: %v", MaskEmail(to), err)
		return err
	}
	log.Printf("Email sent to %s", MaskEmail(to))
	return nil
}

// SendPasswordResetEmail sends the reset link for a staff account.
func SendPasswordResetEmail(recipientEmail, resetLink, name string) error {
	name = sanitizeHeader(name)
	resetLink = ensureScheme(sanitizeHeader(resetLink))

	subject := "Reset your Travel Desk password"

	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"A password reset was requested for your account.\n"+
			"Use the link below to choose a new password:\n%s\n\n"+
			"The link expires in one hour. If you did not request this, you can ignore this email.\n",
		name, resetLink,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Password Reset</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.btn { display:inline-block; padding:12px 20px; background:#0b74ff; color:#fff; text-decoration:none; border-radius:6px; margin-top:16px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Password reset</h2>
    <p>Hi %s,</p>
    <p>A password reset was requested for your account. Click the button below to choose a new password. The link expires in one hour.</p>
    <a class="btn" href="%s" target="_blank">Reset my password</a>
    <p>If you did not request this, you can ignore this email.</p>
  </div>
</div>
</body>
</html>`,
		name, resetLink,
	)

	return sendMail(recipientEmail, subject, plainBody, htmlBody)
}

// SendBookingStatusEmail notifies the customer about a status change on their
// booking. Best-effort: callers treat failures as non-fatal.
func SendBookingStatusEmail(recipientEmail, bookingRef, status, name string) error {
	name = sanitizeHeader(name)
	bookingRef = sanitizeHeader(bookingRef)
	status = sanitizeHeader(status)

	subject := fmt.Sprintf("Booking %s update: %s", bookingRef, status)

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your booking %s is now %s.\n\n"+
			"If you have any questions, feel free to contact us.\n\n"+
			"Best regards,\nTravel Desk",
		name, bookingRef, status,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking Update</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.label { font-weight:700; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking update</h2>
    <p>Dear %s,</p>
    <p>Your booking <span class="label">%s</span> is now <span class="label">%s</span>.</p>
    <p>If you have any questions, feel free to contact us.</p>
    <p>Best regards,<br>Travel Desk</p>
  </div>
</div>
</body>
</html>`,
		name, bookingRef, status,
	)

	return sendMail(recipientEmail, subject, plainBody, htmlBody)
}
