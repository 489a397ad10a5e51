// Package ses sends result-summary emails through Amazon SES.
package ses

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsses "github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/culturiq/engine/internal/config"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// SESService abstracts the SES client for testing.
type SESService interface {
	SendEmail(ctx context.Context, params *awsses.SendEmailInput, optFns ...func(*awsses.Options)) (*awsses.SendEmailOutput, error)
}

// Sender wraps SES with the engine's sender identity.
type Sender struct {
	client SESService
	cfg    config.EmailConfig
	logger logging.Logger
}

// NewSender builds a sender using the default AWS credential chain.
func NewSender(ctx context.Context, cfg config.EmailConfig, log logging.Logger) (*Sender, error) {
	if cfg.Sender == "" {
		return nil, errors.New(errors.ErrCodeValidation, "email sender address is required")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeExternalService, "failed to load aws configuration")
	}
	return &Sender{client: awsses.NewFromConfig(awsCfg), cfg: cfg, logger: log}, nil
}

// NewSenderWithClient injects a client, used by tests.
func NewSenderWithClient(client SESService, cfg config.EmailConfig, log logging.Logger) *Sender {
	return &Sender{client: client, cfg: cfg, logger: log}
}

// Send delivers one email.  Both bodies are required so every mail reader
// gets a usable rendering.
func (s *Sender) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if to == "" {
		return errors.New(errors.ErrCodeValidation, "recipient address is required")
	}

	input := &awsses.SendEmailInput{
		Source:      aws.String(s.cfg.Sender),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(textBody)},
				Html: &types.Content{Data: aws.String(htmlBody)},
			},
		},
	}
	if s.cfg.ReplyTo != "" {
		input.ReplyToAddresses = []string{s.cfg.ReplyTo}
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return errors.Wrap(err, errors.ErrCodeNotifyDispatchFailed, "failed to send email")
	}
	s.logger.Debug("email sent", logging.String("subject", subject))
	return nil
}
