package server

import (
	"context"

	"github.com/osse101/CozyGarden_Go/internal/progression"
	"github.com/osse101/CozyGarden_Go/internal/sse"
)

// engineCommands lets websocket clients drive the engine
type engineCommands struct {
	engine progression.Service
}

// NewCommands adapts the engine to the websocket command surface
func NewCommands(engine progression.Service) sse.Commands {
	return &engineCommands{engine: engine}
}

func (c *engineCommands) Pet(ctx context.Context) error {
	c.engine.Pet(ctx)
	return nil
}

func (c *engineCommands) Purchase(ctx context.Context, upgradeID string) error {
	_, err := c.engine.Purchase(ctx, upgradeID)
	return err
}
