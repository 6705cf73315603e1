package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/shared/config"
)

const dateLayout = "Mon, 02 Jan 2006"

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for invitation links (e.g., "http://localhost:8080")
}

// NewSMTPConfig maps the email and server sections onto an SMTPConfig.
func NewSMTPConfig(cfg *config.EmailConfig, baseURL string) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     baseURL,
	}
}

var _ services.InvitationNotifier = (*SMTPInvitationNotifier)(nil)

type SMTPInvitationNotifier struct {
	config SMTPConfig
	send   func(m *gomail.Message) error
}

func NewSMTPInvitationNotifier(config SMTPConfig) *SMTPInvitationNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPInvitationNotifier{
		config: config,
		send:   func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

func (s *SMTPInvitationNotifier) NotifyInvited(ctx context.Context, notice services.InvitationNotice) error {
	if notice.Email == "" {
		return fmt.Errorf("invitation notice has no recipient")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.send(s.buildInvitation(notice)); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}
	return nil
}

func (s *SMTPInvitationNotifier) buildInvitation(notice services.InvitationNotice) *gomail.Message {
	invitationsURL := fmt.Sprintf("%s/invitations", s.config.BaseURL)
	dates := fmt.Sprintf("%s - %s",
		notice.StartDate.Format(dateLayout), notice.EndDate.Format(dateLayout))

	subject := fmt.Sprintf("You're invited to plan \"%s\"", notice.PlanTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>You have a new trip invitation</h2>
			<p>Member #%d invited you to join <strong>%s</strong> (%s).</p>
			<p>Review your pending invitations here:</p>
			<p><a href="%s">%s</a></p>
			<p>If you weren't expecting this, you can simply deny the invitation.</p>
		</body>
		</html>
	`, notice.InviterID, html.EscapeString(notice.PlanTitle), dates, invitationsURL, invitationsURL)

	plainBody := fmt.Sprintf(`
You have a new trip invitation

Member #%d invited you to join "%s" (%s).

Review your pending invitations at:
%s

If you weren't expecting this, you can simply deny the invitation.
	`, notice.InviterID, notice.PlanTitle, dates, invitationsURL)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", notice.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}
