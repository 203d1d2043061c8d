package smtp

import (
	"context"
	"fmt"
	"net/smtp"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/drivers/mailer"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"
)

type smtpService struct {
	Client *mailer.SMTPClient
}

func NewSmtpService(client *mailer.SMTPClient) contracts.MailerService {
	return &smtpService{
		Client: client,
	}
}

func (svc *smtpService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	from := svc.Client.EmailSender
	format := constvars.EmailSendBasicEmailSubjectFormat
	if payload.HTML {
		format = constvars.EmailSendHTMLSubjectFormat
	}
	msg := []byte(fmt.Sprintf(format, payload.ReceiverEmail, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{payload.ReceiverEmail}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
