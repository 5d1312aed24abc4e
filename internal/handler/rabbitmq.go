package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/siamscreen/stocksync/internal/platform/models"
	"github.com/siamscreen/stocksync/internal/platform/rabbitmq"
	"github.com/siamscreen/stocksync/pkg/v1/commander"
)

// Syncer reconciles external catalog pages into local storage.
type Syncer interface {
	SyncPage(ctx context.Context, page int, mode models.SyncMode, updatedAfter *time.Time) (*models.SyncPageResult, error)
	SyncStockLevels(ctx context.Context) (*models.StockLevelSyncResult, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq    *rabbitmq.RabbitMQ
	syncer Syncer
	logger *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, syncer Syncer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:    rmq,
		syncer: syncer,
		logger: logger,
	}
}

// Start starts consuming and handling sync commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		if cmd.StockLevelsOnly {
			return h.handleStockLevelSync(ctx)
		}

		return h.handlePageSync(ctx, cmd)
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func (h *RMQHandler) handlePageSync(ctx context.Context, cmd *commander.SyncCommand) error {
	h.logger.Debug().
		Int("page", cmd.Page).
		Str("mode", cmd.Mode).
		Msg("page sync started")

	result, err := h.syncer.SyncPage(ctx, cmd.Page, models.SyncMode(cmd.Mode), cmd.UpdatedAfter)
	if err != nil {
		return fmt.Errorf("page sync failed: %w", err)
	}

	h.logger.Info().
		Int("page", result.Page).
		Int("totalPages", result.TotalPages).
		Bool("hasMore", result.HasMore).
		Int("createdProducts", result.CreatedProducts).
		Int("updatedProducts", result.UpdatedProducts).
		Int("createdVariants", result.CreatedVariants).
		Int("updatedVariants", result.UpdatedVariants).
		Int("errors", len(result.Errors)).
		Msg("page sync finished")

	return nil
}

func (h *RMQHandler) handleStockLevelSync(ctx context.Context) error {
	h.logger.Debug().Msg("stock level sync started")

	result, err := h.syncer.SyncStockLevels(ctx)
	if err != nil {
		return fmt.Errorf("stock level sync failed: %w", err)
	}

	h.logger.Info().
		Int("updatedVariants", result.UpdatedVariants).
		Int("updatedProducts", result.UpdatedProducts).
		Int("skipped", result.Skipped).
		Int("errors", len(result.Errors)).
		Msg("stock level sync finished")

	return nil
}

func decodeMessage(msg []byte) (*commander.SyncCommand, error) {
	var cmd commander.SyncCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, err
}
