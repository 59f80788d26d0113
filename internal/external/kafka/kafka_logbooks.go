package awards

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	interf "github.com/glkeru/hamawards/internal/interfaces"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// LogbookUpload - сообщение о загруженном журнале
type LogbookUpload struct {
	UserID string `json:"userId"`
	ADIF   string `json:"adif"`
}

// MessageSource - источник сообщений (Kafka reader)
type MessageSource interface {
	GetNewMessage(ctx context.Context) ([]byte, error)
}

type KafkaLogbooks struct {
	reader *kafka.Reader
}

func GetNewReader(brokers []string, topic string, group string) (reader *KafkaLogbooks, err error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("env AWARDS_KAFKA_BROKERS is not set")
	}
	if topic == "" {
		return nil, fmt.Errorf("env AWARDS_KAFKA_TOPIC is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	}
	return &KafkaLogbooks{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaLogbooks) GetNewMessage(ctx context.Context) ([]byte, error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return nil, err
	}
	return msg.Value, nil
}

func (k *KafkaLogbooks) CloseReader() {
	k.reader.Close()
}

// ParseUpload разбирает сообщение о журнале
func ParseUpload(data []byte) (LogbookUpload, error) {
	upload := LogbookUpload{}
	if err := json.Unmarshal(data, &upload); err != nil {
		return upload, fmt.Errorf("logbook message: %w", err)
	}
	if upload.UserID == "" {
		return upload, fmt.Errorf("logbook message: userId is empty")
	}
	return upload, nil
}

// Consume читает сообщения и загружает журналы, не более workers одновременно.
// Возвращает ошибку чтения; отмена ctx - нормальное завершение.
func Consume(ctx context.Context, source MessageSource, importer interf.LogbookImporter, workers int, logger *zap.Logger) error {
	if workers <= 0 {
		workers = 1
	}
	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, workers)
	defer wg.Wait()

	for {
		data, err := source.GetNewMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		upload, err := ParseUpload(data)
		if err != nil {
			logger.Error("Skip message", zap.Error(err))
			continue
		}

		semaphore <- struct{}{}
		wg.Add(1)
		go func(upload LogbookUpload) {
			defer wg.Done()
			defer func() { <-semaphore }()
			parsed, imported, err := importer.Import(ctx, upload.UserID, upload.ADIF)
			if err != nil {
				logger.Error("Import logbook", zap.String("user", upload.UserID), zap.Error(err))
				return
			}
			logger.Info("Logbook imported",
				zap.String("user", upload.UserID),
				zap.Int("parsed", parsed),
				zap.Int("imported", imported),
			)
		}(upload)
	}
}
