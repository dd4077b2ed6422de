package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/config"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/service"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type ItemStatusUpdater interface {
	UpdateItemStatus(ctx context.Context, actor entities.Actor, in service.ItemStatusInput) (entities.OrderItem, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	updater  ItemStatusUpdater
	retry    utils.RetryConfig
}

// NewKafkaHandler consumes kitchen item status changes from cfg.KitchenTopic.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, updater ItemStatusUpdater) *kafkaHandler {
	return newKafkaHandler(logger,
		kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.KitchenTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		&kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		updater,
	)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, updater ItemStatusUpdater) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		updater:  updater,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 50 * time.Millisecond,
			MaxDelay:     time.Second,
			Retryable: func(err error) bool {
				return errors.Is(err, entities.ErrConcurrentModification)
			},
		},
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// Сообщение не применено и не попало в DLQ, оффсет не коммитим
		if !h.process(ctx, m) {
			continue
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// process reports whether m was either applied or dead-lettered.
func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) bool {
	kitchenInProgress.Inc()
	defer kitchenInProgress.Dec()

	start := time.Now()
	err := h.HandleMessage(ctx, m)
	kitchenProcessingDuration.Observe(time.Since(start).Seconds())

	if err == nil {
		kitchenProcessed.Inc()
		return true
	}

	kitchenFailed.Inc()
	h.logger.Error("failed to handle message",
		slog.Any("error", err),
		slog.String("code", entities.CodeOf(err)),
		slog.Int64("offset", m.Offset),
	)

	// В библиотеке уже есть retry
	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err), slog.Int64("offset", m.Offset))
		return false
	}
	kitchenDLQ.Inc()
	return true
}

// HandleMessage applies one kitchen event. Concurrent modifications of the
// same order are retried; every other error is final.
func (h *kafkaHandler) HandleMessage(ctx context.Context, m kafka.Message) error {
	var event KitchenEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal kitchen event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid kitchen event: %w", err)
	}

	actor, in := KitchenEventToInput(event)
	return utils.Retry(ctx, h.retry, func() error {
		_, err := h.updater.UpdateItemStatus(ctx, actor, in)
		return err
	})
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
