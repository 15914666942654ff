package awssess

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
)

var sess *session.Session

// MustGetSession returns the process wide session. Locally it uses the
// AWS_PROFILE profile (default "personal") in AWS_REGION (default us-east-1).
func MustGetSession() *session.Session {

	if sess != nil {
		return sess
	}

	switch os.Getenv("STAGE") {
	case "local":
		profile := os.Getenv("AWS_PROFILE")
		if profile == "" {
			profile = "personal"
		}
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = "us-east-1"
		}

		sess = session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
			Profile:           profile,
			Config: aws.Config{
				Region: aws.String(region),
			},
		}))
	default:
		sess = session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
	}
	return sess
}
