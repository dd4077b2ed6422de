package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
)

type codeSource interface {
	LastCodeWithPrefix(ctx context.Context, prefix string) (string, error)
}

// sequenceGenerator derives the next order code of a day from the greatest
// code already stored for it. Callers serialize allocation per day.
type sequenceGenerator struct {
	codes codeSource
}

func newSequenceGenerator(codes codeSource) *sequenceGenerator {
	return &sequenceGenerator{codes: codes}
}

func (g *sequenceGenerator) Next(ctx context.Context, day time.Time) (string, error) {
	last, err := g.codes.LastCodeWithPrefix(ctx, entities.OrderCodePrefix(day))
	if err != nil {
		return "", fmt.Errorf("failed to get last order code: %w", err)
	}
	if last == "" {
		return entities.FormatOrderCode(day, 1), nil
	}

	seq, err := entities.ParseOrderCodeSeq(last)
	if err != nil {
		return "", err
	}
	return entities.FormatOrderCode(day, seq+1), nil
}
