package initializers

import (
	"attachment-hub-backend/config"
	filestorage "attachment-hub-backend/lib/file-storage"
	s3client "attachment-hub-backend/s3"
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// InitS3 leaves uploads disabled when no endpoint is configured.
func InitS3() {
	defer func() {
		filestorage.NewInstance(s3client.Client, config.Conf.S3.BucketName)
	}()
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 endpoint is not set, file uploads are disabled")
		return
	}
	minioClient, err := s3client.NewClient(s3client.Params{
		Endpoint:        config.Conf.S3.Endpoint,
		AccessKeyID:     config.Conf.S3.AccessKeyID,
		SecretAccessKey: config.Conf.S3.SecretAccessKey,
		UseSSL:          *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("S3 client init failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("S3 bucket check failed")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
