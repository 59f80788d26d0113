package awards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	interf "github.com/glkeru/hamawards/internal/interfaces"
	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type RabbitConsumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	Msg      <-chan amqp.Delivery
	chout    *amqp.Channel
	queueout string
}

func NewRabbitConsumer(rabbiturl string, queue string, queueout string) (rabbit *RabbitConsumer, err error) {
	if rabbiturl == "" {
		return nil, fmt.Errorf("env AWARDS_RABBIT_URL is not set")
	}
	if queue == "" || queueout == "" {
		return nil, fmt.Errorf("env AWARDS_CLAIM_QUEUE and AWARDS_CONFIRM_QUEUE must be set")
	}

	conn, err := amqp.Dial(rabbiturl)
	if err != nil {
		return nil, err
	}
	// канал для входящих
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	// канал для исходящих
	chout, err := conn.Channel()
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	_, err = chout.QueueDeclare(
		queueout, // name
		true,     // durable
		false,    // delete when unused
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		chout.Close()
		ch.Close()
		conn.Close()
		return nil, err
	}

	msg, err := ch.Consume(
		queue, // queue
		"",    // consumer
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		chout.Close()
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitConsumer{conn, ch, msg, chout, queueout}, nil
}

func (r *RabbitConsumer) Close() {
	r.chout.Close()
	r.ch.Close()
	r.conn.Close()
}

// ClaimRequest - запрос на получение уровня награды
type ClaimRequest struct {
	UserID    string `json:"userId"`
	AwardID   string `json:"awardId"`
	RequestID string `json:"requestId"`
}

// ClaimConfirm - результат обработки запроса
type ClaimConfirm struct {
	RequestID string `json:"requestId"`
	UserID    string `json:"userId"`
	AwardID   string `json:"awardId"`
	Success   bool   `json:"success"`
	Serial    string `json:"serial,omitempty"`
	Level     string `json:"level,omitempty"`
	Error     string `json:"error,omitempty"`
}

// подтверждение получения
func (r *RabbitConsumer) Processed(ctx context.Context, confirm ClaimConfirm) error {
	msg, err := json.Marshal(confirm)
	if err != nil {
		return err
	}

	return r.chout.PublishWithContext(ctx,
		"",         // exchange
		r.queueout, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: confirm.RequestID,
			Body:          msg,
		})
}

// HandleClaim выполняет запрос. Ответ формируется всегда, даже для ошибки разбора.
func HandleClaim(ctx context.Context, service interf.AwardService, body []byte) ClaimConfirm {
	req := ClaimRequest{}
	if err := json.Unmarshal(body, &req); err != nil {
		return ClaimConfirm{Error: "message is not correct"}
	}
	confirm := ClaimConfirm{RequestID: req.RequestID, UserID: req.UserID, AwardID: req.AwardID}
	if req.UserID == "" {
		confirm.Error = "userId is empty"
		return confirm
	}
	awardID, err := uuid.Parse(req.AwardID)
	if err != nil {
		confirm.Error = "awardId is not correct"
		return confirm
	}

	claim, err := service.Claim(ctx, req.UserID, awardID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotEligible):
			confirm.Error = "Conditions not met"
		case errors.Is(err, models.ErrAlreadyClaimed):
			confirm.Error = "Already claimed"
		case errors.Is(err, models.ErrNotFound):
			confirm.Error = "Award not found"
		default:
			confirm.Error = err.Error()
		}
		return confirm
	}
	confirm.Success = true
	confirm.Serial = claim.SerialNumber
	confirm.Level = claim.Level
	return confirm
}

// Confirmer - публикация результата
type Confirmer interface {
	Processed(ctx context.Context, confirm ClaimConfirm) error
}

// Work запускает workers обработчиков очереди и ждет их завершения
func Work(ctx context.Context, msgs <-chan amqp.Delivery, service interf.AwardService, confirmer Confirmer, workers int, logger *zap.Logger) {
	if workers <= 0 {
		workers = 1
	}
	wg := &sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker(ctx, msgs, service, confirmer, wg, logger)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, msgs <-chan amqp.Delivery, service interf.AwardService, confirmer Confirmer, wg *sync.WaitGroup, logger *zap.Logger) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			confirm := HandleClaim(ctx, service, msg.Body)
			if !confirm.Success {
				logger.Error("Claim rejected",
					zap.String("request", confirm.RequestID),
					zap.String("error", confirm.Error),
				)
			}
			if err := confirmer.Processed(ctx, confirm); err != nil {
				logger.Error(err.Error())
			}
		}
	}
}
