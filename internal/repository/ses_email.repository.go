package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailRepository is a thin wrapper around AWS SES. It only sends
// pre-rendered HTML; building the plan summary markup is the
// notification service's job.
type EmailRepository interface {
	SendEmail(to string, subject string, body string) error
}

type emailRepositoryHandler struct {
	sesClient *sesv2.Client
	fromEmail string
}

// NewEmailRepository creates an SES-backed email repository. fromEmail
// must be a sender address verified in the given region.
func NewEmailRepository(region, fromEmail string) (EmailRepository, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)

	return &emailRepositoryHandler{
		sesClient: client,
		fromEmail: fromEmail,
	}, nil
}

func (h *emailRepositoryHandler) SendEmail(to string, subject string, body string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(h.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	_, err := h.sesClient.SendEmail(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	return nil
}
