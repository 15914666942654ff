package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

type CredentialsManager struct {
	manager secretsmanageriface.SecretsManagerAPI
}

var (
	ErrSecretNotFound = errors.New("Secret not found")
	ErrEmptySecret    = errors.New("Secret has no string value")
)

func NewCredentialsManager(sess *session.Session) *CredentialsManager {
	return &CredentialsManager{
		manager: secretsmanager.New(sess),
	}
}

func (cm *CredentialsManager) GetSecret(ctx context.Context, secretArn string) (string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     &secretArn,
		VersionStage: aws.String("AWSCURRENT"),
	}
	out, err := cm.manager.GetSecretValueWithContext(ctx, input)

	var t *secretsmanager.ResourceNotFoundException
	if errors.As(err, &t) {
		return "", ErrSecretNotFound
	}
	if err != nil {
		return "", err
	}
	if out.SecretString == nil {
		return "", ErrEmptySecret
	}
	return *out.SecretString, nil
}

// GetJSON decodes a JSON secret into v.
func (cm *CredentialsManager) GetJSON(ctx context.Context, secretArn string, v any) error {
	s, err := cm.GetSecret(ctx, secretArn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("failed to unmarshal secret %s: %w", secretArn, err)
	}
	return nil
}
