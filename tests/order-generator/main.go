package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type OptionRequest struct {
	OptionItemID string `json:"option_item_id"`
}

type ItemRequest struct {
	MenuItemID string          `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	Note       string          `json:"note,omitempty"`
	Options    []OptionRequest `json:"options,omitempty"`
}

type SubmitRequest struct {
	Type     string        `json:"type"`
	Note     string        `json:"note,omitempty"`
	Priority bool          `json:"priority,omitempty"`
	Items    []ItemRequest `json:"items"`
}

type Item struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Order struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Status string `json:"status"`
	Items  []Item `json:"items"`
}

type KitchenEvent struct {
	OrderID    string `json:"order_id"`
	ItemID     string `json:"item_id"`
	Status     string `json:"status"`
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason,omitempty"`
}

var notes = []string{"", "", "no onions", "extra spicy", "less ice"}

func generateRandomOrder(menu []string) SubmitRequest {
	items := make([]ItemRequest, 0, 4)
	for range rand.Intn(4) + 1 {
		items = append(items, ItemRequest{
			MenuItemID: menu[rand.Intn(len(menu))],
			Quantity:   rand.Intn(3) + 1,
			Note:       notes[rand.Intn(len(notes))],
		})
	}
	return SubmitRequest{
		Type:     "TAKEAWAY",
		Priority: rand.Intn(10) == 0,
		Items:    items,
	}
}

func submit(ctx context.Context, baseURL, employee string, req SubmitRequest) (Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Order{}, err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/orders/kitchen", bytes.NewReader(body))
	if err != nil {
		return Order{}, err
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-Employee-ID", employee)

	resp, err := http.DefaultClient.Do(r)
	if err != nil {
		return Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return Order{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var order Order
	err = json.NewDecoder(resp.Body).Decode(&order)
	return order, err
}

// kitchenFlow returns the statuses an item goes through. Every tenth item is rejected.
func kitchenFlow() []string {
	if rand.Intn(10) == 0 {
		return []string{"COOKING", "REJECTED"}
	}
	return []string{"COOKING", "READY", "COMPLETED"}
}

func cook(ctx context.Context, writer *kafka.Writer, employee string, order Order) {
	for _, item := range order.Items {
		for _, status := range kitchenFlow() {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(rand.Intn(500)+200) * time.Millisecond):
			}

			event := KitchenEvent{OrderID: order.ID, ItemID: item.ID, Status: status, EmployeeID: employee}
			if status == "REJECTED" {
				event.Reason = "out of ingredients"
			}
			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(order.ID), Value: data}); err != nil {
				log.Println("failed to write kitchen event:", err)
				return
			}
		}
	}
	log.Println("order cooked", order.Code)
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	brokers := flag.String("brokers", "localhost:9092", "kafka brokers")
	topic := flag.String("topic", "kitchen-item-status", "kitchen topic")
	menuIDs := flag.String("menu", "", "comma separated menu item ids")
	flag.Parse()

	menu := strings.Split(*menuIDs, ",")
	if *menuIDs == "" {
		log.Fatal("-menu is required")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	waiter := uuid.NewString()
	chef := uuid.NewString()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order, err := submit(ctx, *baseURL, waiter, generateRandomOrder(menu))
			if err != nil {
				log.Println("failed to submit order:", err)
				continue
			}
			log.Println("order submitted", order.Code)
			go cook(ctx, writer, chef, order)
		case <-ctx.Done():
			return
		}
	}
}
