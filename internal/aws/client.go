package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	awsiamsdk "github.com/aws/aws-sdk-go-v2/service/iam"
	awss3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	awsiam "tasnim.dev/aws-iam-audit/internal/aws/iam"
	awss3 "tasnim.dev/aws-iam-audit/internal/aws/s3"
)

type ServiceClient struct {
	IAM *awsiam.Client
	S3  *awss3.Client
	STS STSAPI
}

func NewServiceClient(cfg aws.Config) *ServiceClient {
	return &ServiceClient{
		IAM: awsiam.NewClient(awsiamsdk.NewFromConfig(cfg)),
		S3:  awss3.NewClient(awss3sdk.NewFromConfig(cfg)),
		STS: sts.NewFromConfig(cfg),
	}
}
