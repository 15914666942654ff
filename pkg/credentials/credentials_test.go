package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

type fakeSecrets struct {
	secretsmanageriface.SecretsManagerAPI
	values map[string]string
}

func (f *fakeSecrets) GetSecretValueWithContext(ctx aws.Context, in *secretsmanager.GetSecretValueInput, _ ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
	v, ok := f.values[*in.SecretId]
	if !ok {
		return nil, &secretsmanager.ResourceNotFoundException{Message_: aws.String("not found")}
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(v)}, nil
}

func TestGetJSON(t *testing.T) {
	cm := &CredentialsManager{manager: &fakeSecrets{values: map[string]string{
		"mailgun": `{"domain":"mg.atelier.fr","apiKey":"key-123"}`,
		"broken":  `{"domain":`,
	}}}

	var ops struct {
		Domain string `json:"domain"`
		ApiKey string `json:"apiKey"`
	}
	if err := cm.GetJSON(context.Background(), "mailgun", &ops); err != nil {
		t.Fatal(err)
	}
	if ops.Domain != "mg.atelier.fr" || ops.ApiKey != "key-123" {
		t.Fatalf("unexpected secret %+v", ops)
	}

	if err := cm.GetJSON(context.Background(), "broken", &ops); err == nil {
		t.Fatal("expected decode error")
	}

	if _, err := cm.GetSecret(context.Background(), "missing"); !errors.Is(err, ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}
