package services

import (
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/qazimatch/qazimatch/internal/config"
)

// Mailer sends the two resume-submission notifications. The production
// implementation talks SMTP; tests substitute their own.
type Mailer interface {
	Send(to, subject, body string, attachment *Attachment) error
}

// Attachment is an inline file on an outgoing mail.
type Attachment struct {
	Filename string
	Content  []byte
}

// EmailService drives the resume-relay notifications: one mail to the
// operator inbox with the CV attached, one confirmation to the submitter.
// Constructed nil-tolerant: with no mailer it logs and drops sends.
type EmailService struct {
	Mailer       Mailer
	OperatorMail string
}

func NewEmailService(mailer Mailer, operatorMail string) *EmailService {
	return &EmailService{Mailer: mailer, OperatorMail: operatorMail}
}

// NotifyResumeSubmission fires both notifications. The confirmation mail is
// best-effort; the operator mail decides success.
func (s *EmailService) NotifyResumeSubmission(fullName, userEmail, notes, fileName string, file []byte) error {
	if s.Mailer == nil {
		logrus.WithField("from", userEmail).Info("resume relay: no mailer configured, submission dropped")
		return nil
	}

	if notes == "" {
		notes = "None"
	}
	operatorBody := fmt.Sprintf("Name: %s\nEmail: %s\nNotes: %s", fullName, userEmail, notes)
	err := s.Mailer.Send(s.OperatorMail,
		fmt.Sprintf("New Resume Submission from %s", fullName),
		operatorBody,
		&Attachment{Filename: fileName, Content: file},
	)
	if err != nil {
		return fmt.Errorf("notify operator: %w", err)
	}

	confirmation := fmt.Sprintf(
		"Thank you, %s!\n\nWe've received your resume and notes. Someone from the QaziMatch team will review your submission and contact you within 24 hours.\n\nBest regards,\nThe QaziMatch Team",
		fullName,
	)
	if err := s.Mailer.Send(userEmail, "We've Received Your Resume - QaziMatch", confirmation, nil); err != nil {
		logrus.WithError(err).Warn("resume relay: confirmation mail failed")
	}
	return nil
}

// SMTPMailer sends mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSMTPMailer returns nil when no relay host is configured.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string, attachment *Attachment) error {
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	msg := buildMessage(m.From, to, subject, body, attachment)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// buildMessage assembles an RFC 2045 multipart message when an attachment
// is present, a plain message otherwise.
func buildMessage(from, to, subject, body string, attachment *Attachment) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\nTo: %s\r\nSubject: %s\r\n", from, to, subject)

	if attachment == nil {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(body)
		return []byte(b.String())
	}

	const boundary = "qazimatch-attachment-boundary"
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\nContent-Type: multipart/mixed; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, body)

	fmt.Fprintf(&b, "--%s\r\nContent-Type: application/octet-stream\r\nContent-Transfer-Encoding: base64\r\nContent-Disposition: attachment; filename=%q\r\n\r\n",
		boundary, attachment.Filename)
	encoded := base64.StdEncoding.EncodeToString(attachment.Content)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded + "\r\n")
	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
