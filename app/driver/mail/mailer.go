package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"member-service/app/config"
)

const resetSubject = "임시 비밀번호 안내"

const resetBodyTemplate = `<html>
<body>
<p>%s 님, 안녕하세요.</p>
<p>요청하신 임시 비밀번호입니다.</p>
<p><strong>%s</strong></p>
<p>로그인 후 비밀번호를 변경해 주세요.</p>
</body>
</html>`

// Mailer sends transactional mail over SMTP. It implements port.MailSender.
type Mailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewMailer creates an SMTP mailer from configuration
func NewMailer(cfg *config.Config, logger *slog.Logger) (*Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUsername),
			gomail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &Mailer{
		client: client,
		from:   cfg.MailFrom,
		logger: logger.With("component", "mailer"),
	}, nil
}

// SendPasswordReset delivers the temporary password to the member's address
func (m *Mailer) SendPasswordReset(ctx context.Context, to, name, tempPassword string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(resetSubject)
	msg.SetBodyString(gomail.TypeTextHTML, fmt.Sprintf(resetBodyTemplate, name, tempPassword))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.Error("failed to send password reset mail", "error", err)
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Info("password reset mail sent")
	return nil
}
