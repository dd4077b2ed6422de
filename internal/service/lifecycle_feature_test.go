package service_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/service"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

type lifecycleTestContext struct {
	t      *testing.T
	stack  *stack
	menu   map[string]uuid.UUID
	tables map[string]uuid.UUID
	order  uuid.UUID
	err    error
}

func (c *lifecycleTestContext) reset() {
	c.stack = newStack(c.t, func() time.Time { return fixedNow })
	c.menu = make(map[string]uuid.UUID)
	c.tables = make(map[string]uuid.UUID)
	c.order = uuid.Nil
	c.err = nil
}

func (c *lifecycleTestContext) load() (*entities.Order, error) {
	return c.stack.orders.Load(context.Background(), c.order)
}

func (c *lifecycleTestContext) lineID(n int) (uuid.UUID, error) {
	o, err := c.load()
	if err != nil {
		return uuid.Nil, err
	}
	if n < 1 || n > len(o.Items) {
		return uuid.Nil, fmt.Errorf("order has %d lines, no line %d", len(o.Items), n)
	}
	return o.Items[n-1].ID, nil
}

func (c *lifecycleTestContext) theMenu(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		code := row.Cells[0].Value
		c.menu[code] = c.stack.addMenuItem(c.t, code, row.Cells[1].Value)
	}
	return nil
}

func (c *lifecycleTestContext) aDineInDraftForTable(name string) error {
	table := uuid.New()
	c.tables[name] = table
	o, err := c.stack.svc.CreateDraft(context.Background(), actor, service.CreateDraftInput{
		Type:    entities.OrderTypeDineIn,
		TableID: &table,
	})
	if err != nil {
		return err
	}
	c.order = o.ID
	return nil
}

func (c *lifecycleTestContext) aTakeawayDraft() error {
	o, err := c.stack.svc.CreateDraft(context.Background(), actor, service.CreateDraftInput{Type: entities.OrderTypeTakeaway})
	if err != nil {
		return err
	}
	c.order = o.ID
	return nil
}

func (c *lifecycleTestContext) iAddOf(quantity int, code string) error {
	_, err := c.stack.svc.AddItem(context.Background(), actor, service.AddItemInput{
		OrderID: c.order,
		Item:    service.ItemInput{MenuItemID: c.menu[code], Quantity: quantity},
	})
	return err
}

func (c *lifecycleTestContext) iSubmitTheOrder() error {
	_, err := c.stack.svc.Submit(context.Background(), actor, service.SubmitInput{OrderID: c.order})
	return err
}

func (c *lifecycleTestContext) iSubmitATakeawayOrderToTheKitchenWith(table *godog.Table) error {
	var items []service.ItemInput
	for _, row := range table.Rows[1:] {
		qty, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		items = append(items, service.ItemInput{
			MenuItemID: c.menu[row.Cells[0].Value],
			Quantity:   qty,
			Note:       row.Cells[2].Value,
		})
	}

	o, err := c.stack.svc.SubmitToKitchen(context.Background(), actor, service.SubmitToKitchenInput{
		Type:  entities.OrderTypeTakeaway,
		Items: items,
	})
	if err != nil {
		return err
	}
	c.order = o.ID
	return nil
}

func (c *lifecycleTestContext) iCancelTheOrderWithReason(reason string) error {
	_, c.err = c.stack.svc.CancelOrder(context.Background(), actor, c.order, reason)
	return nil
}

func (c *lifecycleTestContext) iCompleteTheOrder() error {
	_, c.err = c.stack.svc.CompleteOrder(context.Background(), actor, c.order)
	return nil
}

func (c *lifecycleTestContext) iCancelLine(n int) error {
	id, err := c.lineID(n)
	if err != nil {
		return err
	}
	changed, err := c.stack.svc.CancelItem(context.Background(), actor, c.order, id, "")
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("line %d was not cancelled", n)
	}
	return nil
}

func (c *lifecycleTestContext) theKitchenMovesLineTo(n int, status string) error {
	id, err := c.lineID(n)
	if err != nil {
		return err
	}
	_, err = c.stack.svc.UpdateItemStatus(context.Background(), actor, service.ItemStatusInput{
		OrderID: c.order,
		ItemID:  id,
		Status:  entities.ItemStatus(status),
	})
	return err
}

func (c *lifecycleTestContext) theRequestSucceeds() error {
	return c.err
}

func (c *lifecycleTestContext) theRequestFailsWith(kind string) error {
	if c.err == nil {
		return errors.New("expected the request to fail")
	}
	got := entities.KindOf(c.err)
	if got == nil || got.Error() != kind {
		return fmt.Errorf("expected %q failure, got %v", kind, c.err)
	}
	return nil
}

func (c *lifecycleTestContext) theOrderHasLines(n int) error {
	o, err := c.load()
	if err != nil {
		return err
	}
	if len(o.Items) != n {
		return fmt.Errorf("expected %d lines, got %d", n, len(o.Items))
	}
	return nil
}

func (c *lifecycleTestContext) lineHasQuantity(n, quantity int) error {
	o, err := c.load()
	if err != nil {
		return err
	}
	if got := o.Items[n-1].Quantity; got != quantity {
		return fmt.Errorf("expected quantity %d on line %d, got %d", quantity, n, got)
	}
	return nil
}

func (c *lifecycleTestContext) theOrderTotalIs(total string) error {
	o, err := c.load()
	if err != nil {
		return err
	}
	if got := o.TotalAmount.String(); got != total {
		return fmt.Errorf("expected total %s, got %s", total, got)
	}
	if recalculated := entities.OrderTotal(o.Items).String(); recalculated != total {
		return fmt.Errorf("stored total %s does not match items total %s", total, recalculated)
	}
	return nil
}

func (c *lifecycleTestContext) theOrderStatusIs(status string) error {
	o, err := c.load()
	if err != nil {
		return err
	}
	if string(o.Status) != status {
		return fmt.Errorf("expected status %s, got %s", status, o.Status)
	}
	return nil
}

func (c *lifecycleTestContext) theOrderHoldsNoTable() error {
	o, err := c.load()
	if err != nil {
		return err
	}
	if o.TableID != nil {
		return fmt.Errorf("expected no table, got %s", o.TableID)
	}
	return nil
}

func (c *lifecycleTestContext) theOrderHoldsTable(name string) error {
	o, err := c.load()
	if err != nil {
		return err
	}
	if o.TableID == nil || *o.TableID != c.tables[name] {
		return fmt.Errorf("expected table %s to be held", name)
	}
	return nil
}

func (c *lifecycleTestContext) everyLineIs(status string) error {
	o, err := c.load()
	if err != nil {
		return err
	}
	for i, it := range o.Items {
		if string(it.Status) != status {
			return fmt.Errorf("line %d is %s, expected %s", i+1, it.Status, status)
		}
	}
	return nil
}

func (c *lifecycleTestContext) theAuditTrailIs(trail string) error {
	o, err := c.load()
	if err != nil {
		return err
	}
	actions := make([]string, 0, len(o.AuditLog))
	for _, e := range o.AuditLog {
		actions = append(actions, string(e.Action))
	}
	if got := strings.Join(actions, ", "); got != trail {
		return fmt.Errorf("expected audit trail %q, got %q", trail, got)
	}
	return nil
}

func initializeLifecycleScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := &lifecycleTestContext{t: t}

		ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		// Given steps
		ctx.Step(`^the menu:$`, tc.theMenu)
		ctx.Step(`^a dine-in draft for table "([^"]*)"$`, tc.aDineInDraftForTable)
		ctx.Step(`^a takeaway draft$`, tc.aTakeawayDraft)

		// When steps
		ctx.Step(`^I add (\d+) of "([^"]*)"$`, tc.iAddOf)
		ctx.Step(`^I submit the order$`, tc.iSubmitTheOrder)
		ctx.Step(`^I submit a takeaway order to the kitchen with:$`, tc.iSubmitATakeawayOrderToTheKitchenWith)
		ctx.Step(`^I cancel the order with reason "([^"]*)"$`, tc.iCancelTheOrderWithReason)
		ctx.Step(`^I complete the order$`, tc.iCompleteTheOrder)
		ctx.Step(`^I cancel line (\d+)$`, tc.iCancelLine)
		ctx.Step(`^the kitchen moves line (\d+) to "([^"]*)"$`, tc.theKitchenMovesLineTo)

		// Then steps
		ctx.Step(`^the request succeeds$`, tc.theRequestSucceeds)
		ctx.Step(`^the request fails with "([^"]*)"$`, tc.theRequestFailsWith)
		ctx.Step(`^the order has (\d+) lines?$`, tc.theOrderHasLines)
		ctx.Step(`^line (\d+) has quantity (\d+)$`, tc.lineHasQuantity)
		ctx.Step(`^the order total is "([^"]*)"$`, tc.theOrderTotalIs)
		ctx.Step(`^the order status is "([^"]*)"$`, tc.theOrderStatusIs)
		ctx.Step(`^the order holds no table$`, tc.theOrderHoldsNoTable)
		ctx.Step(`^the order holds table "([^"]*)"$`, tc.theOrderHoldsTable)
		ctx.Step(`^every line is "([^"]*)"$`, tc.everyLineIs)
		ctx.Step(`^the audit trail is "([^"]*)"$`, tc.theAuditTrailIs)
	}
}

func TestLifecycleFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeLifecycleScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/order_lifecycle.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
