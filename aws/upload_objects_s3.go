package s3

import (
	"fmt"
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type AWSConfig struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

func LoadConfig() AWSConfig {
	return AWSConfig{
		Region:          os.Getenv("AWS_REGION"),
		Bucket:          os.Getenv("S3_BUCKET"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

func NewSession(awsConfig AWSConfig) (*session.Session, error) {
	return session.NewSession(&aws.Config{
		Region: aws.String(awsConfig.Region),
		Credentials: credentials.NewStaticCredentials(
			awsConfig.AccessKeyID, awsConfig.SecretAccessKey, ""),
	})
}

// UploadObject uploads the file and returns its public object URL.
func UploadObject(sess *session.Session, awsConfig AWSConfig, fileName string, contentType string, file multipart.File) (string, error) {
	uploader := s3manager.NewUploader(sess)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(awsConfig.Bucket),
		Key:         aws.String(fileName),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", awsConfig.Bucket, awsConfig.Region, fileName), nil
}
