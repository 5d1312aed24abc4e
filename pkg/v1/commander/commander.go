// Package commander lets other services request catalog syncs. The caller
// drives pagination: it sends one command per page, tracks the last
// successfully completed page and the updated-after cursor, and decides
// whether to retry a failed page or restart from page one.
package commander

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SyncCommand requests one bounded unit of sync work.
type SyncCommand struct {
	Page            int        `json:"page,omitempty"`
	Mode            string     `json:"mode,omitempty"`
	UpdatedAfter    *time.Time `json:"updatedAfter,omitempty"`
	StockLevelsOnly bool       `json:"stockLevelsOnly,omitempty"`
}

// SyncCommander sends sync commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns new SyncCommander using provided sender for sending messages.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendSyncPageCommand requests reconciliation of one catalog page. For
// incremental mode, updatedAfter is the timestamp of the last successful run.
func (c SyncCommander) SendSyncPageCommand(ctx context.Context, page int, mode string, updatedAfter *time.Time) error {
	return c.send(ctx, SyncCommand{
		Page:         page,
		Mode:         mode,
		UpdatedAfter: updatedAfter,
	})
}

// SendStockLevelSyncCommand requests a quantity-only sweep of the whole
// stock-balance listing.
func (c SyncCommander) SendStockLevelSyncCommand(ctx context.Context) error {
	return c.send(ctx, SyncCommand{
		StockLevelsOnly: true,
	})
}

func (c SyncCommander) send(ctx context.Context, cmd SyncCommand) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
