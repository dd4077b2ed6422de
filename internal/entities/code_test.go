package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCode(t *testing.T) {
	day := time.Date(2025, 1, 2, 23, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))

	assert.Equal(t, "ORD-20250102-", entities.OrderCodePrefix(day))
	assert.Equal(t, "ORD-20250102-0007", entities.FormatOrderCode(day, 7))
	assert.Equal(t, "ORD-20250102-12345", entities.FormatOrderCode(day, 12345))

	seq, err := entities.ParseOrderCodeSeq("ORD-20250102-0042")
	require.NoError(t, err)
	assert.Equal(t, 42, seq)

	for _, bad := range []string{"", "ORD-20250102-", "ORD-20250102-12", "X-20250102-0001", "ORD-20250102-abcd"} {
		_, err := entities.ParseOrderCodeSeq(bad)
		assert.Error(t, err, bad)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	assert.ErrorIs(t, entities.ErrCodeGenerationConflict, entities.ErrConflict)
	assert.Equal(t, entities.ErrConflict, entities.KindOf(entities.ErrConcurrentModification))
	assert.Equal(t, "order.not_found", entities.CodeOf(entities.ErrOrderNotFound))
	assert.Equal(t, "internal", entities.CodeOf(assert.AnError))
	assert.Nil(t, entities.KindOf(assert.AnError))
}
