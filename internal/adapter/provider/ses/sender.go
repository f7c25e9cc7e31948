// Package ses implements the external delivery backend on top of AWS SESv2.
package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/postlog-io/postlog-backend/internal/domain"
)

// sesAPI is the slice of the SESv2 client used by Sender.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender delivers mail through AWS SESv2.
type Sender struct {
	client sesAPI
}

// New creates a SES sender using the default AWS credential chain and the
// configured region.
func New(ctx context.Context, region string) (*Sender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("ses: load aws config: %w", err)
	}
	return &Sender{client: sesv2.NewFromConfig(cfg)}, nil
}

// Send delivers one HTML message. Provider failures are wrapped as
// domain.ErrDelivery so callers can classify them without knowing SES types.
func (s *Sender) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	charset := aws.String("UTF-8")

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: charset},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: charset},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses: send to %s: %v: %w", to, err, domain.ErrDelivery)
	}

	return nil
}
