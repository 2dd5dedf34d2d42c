package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func initializeEmailHandler() (EmailRepository, error) {
	secretsFile := "../../secrets-dev.json"
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open secrets-dev.json: %w", err)
	}

	type secrets struct {
		Email struct {
			Region    string `json:"region"`
			FromEmail string `json:"fromEmail"`
			ToEmail   string `json:"toEmail"`
		} `json:"email"`
	}

	s := secrets{}
	err = json.Unmarshal(f, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal secrets: %w", err)
	}

	if s.Email.Region == "" {
		return nil, fmt.Errorf("email region not found in secrets")
	}
	if s.Email.FromEmail == "" {
		return nil, fmt.Errorf("email fromEmail not found in secrets")
	}

	repo, err := NewEmailRepository(s.Email.Region, s.Email.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}

	return repo, nil
}

func Test_emailRepositoryHandler_SendEmail(t *testing.T) {
	// sends a real email - enable by hand
	if true {
		t.Skip("set condition to false to run against live SES")
	}

	handler, err := initializeEmailHandler()
	require.NoError(t, err)

	testEmail := "dev@example.com"
	subject := "Harvest plan test email"
	body := `
		<html>
			<body>
				<h2>Harvest plan for AAPL</h2>
				<p>Rung 1: sell 16 shares at $120.00</p>
			</body>
		</html>
	`

	err = handler.SendEmail(testEmail, subject, body)
	require.NoError(t, err)
}
