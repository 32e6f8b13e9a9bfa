package aws

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestNewServiceClient(t *testing.T) {
	c := NewServiceClient(awssdk.Config{Region: "us-east-1"})

	assert.NotNil(t, c.IAM)
	assert.NotNil(t, c.S3)
	assert.NotNil(t, c.STS)
}
