// Package notifier envia os e-mails de relatório pelo SES
package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/vfg2006/creator-automation/internal/config"
	"github.com/vfg2006/creator-automation/pkg/log"
)

var ErrMissingRecipient = errors.New("destinatário do e-mail não informado")

// EmailSender é o subconjunto do cliente SES v2 usado aqui
type EmailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESNotifier struct {
	client EmailSender
	from   string
}

func NewSESNotifier(awsCfg aws.Config, cfg config.Reports) *SESNotifier {
	return newSESNotifier(sesv2.NewFromConfig(awsCfg), cfg)
}

func newSESNotifier(client EmailSender, cfg config.Reports) *SESNotifier {
	from := cfg.EmailFrom
	if cfg.EmailFromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom)
	}

	return &SESNotifier{client: client, from: from}
}

func (n *SESNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return ErrMissingRecipient
	}

	result, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("erro ao enviar e-mail para %s: %w", to, err)
	}

	log.ForContext(ctx).WithField("message_id", aws.ToString(result.MessageId)).Debug("notifier: email accepted by ses")

	return nil
}
