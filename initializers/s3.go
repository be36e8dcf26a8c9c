package initializers

import (
	"context"
	"nexora-hcm/config"
	filestorage "nexora-hcm/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// InitS3 nil, если S3 не настроен или недоступен: сервис работает без файлов резюме
func InitS3(ctx context.Context) filestorage.Provider {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, загрузка резюме недоступна")
		return nil
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return nil
	}

	storage := filestorage.NewInstance(minioClient, config.Conf.S3.BucketName)
	if err = storage.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("S3 соединение не удалось, бакет недоступен")
		return nil
	}
	log.Info("S3 клиент успешно инициализирован")
	return storage
}
