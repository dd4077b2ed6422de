package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// catalogRepo reads menu and option definitions. The catalog is managed elsewhere.
type catalogRepo struct {
	sqlRepo
}

func NewCatalogRepo(db *sqlx.DB, ph sq.PlaceholderFormat) *catalogRepo {
	return &catalogRepo{sqlRepo: newSQLRepo(db, ph)}
}

func (r *catalogRepo) GetMenuItem(ctx context.Context, id uuid.UUID) (entities.MenuItem, error) {
	query, args := r.qb.Select(
		"id", "code", "name", "price_dine_in", "price_take_away", "station", "is_out_of_stock").
		From("menu_items").
		Where(sq.Eq{"id": id}).
		MustSql()

	var item MenuItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.MenuItem{}, entities.ErrMenuItemNotFound
	}
	if err != nil {
		return entities.MenuItem{}, fmt.Errorf("failed to get menu item: %w", err)
	}
	return MenuItemToEntity(item), nil
}

// GetOptionItems returns the option items among ids that belong to menuItemID, keyed by id.
func (r *catalogRepo) GetOptionItems(ctx context.Context, menuItemID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]entities.OptionItem, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]entities.OptionItem{}, nil
	}

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	query, args := r.qb.Select(
		"oi.id AS id", "oi.label AS label", "oi.extra_price AS extra_price", "oi.is_available AS is_available",
		"g.id AS group_id", "g.menu_item_id AS menu_item_id", "g.name AS group_name", "g.group_type AS group_type").
		From("option_items oi").
		Join("option_groups g ON g.id = oi.group_id").
		Where(sq.Eq{"g.menu_item_id": menuItemID, "oi.id": strIDs}).
		MustSql()

	var rows []OptionItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select option items: %w", err)
	}

	result := make(map[uuid.UUID]entities.OptionItem, len(rows))
	for _, row := range rows {
		result[row.ID] = OptionItemToEntity(row)
	}
	return result, nil
}
