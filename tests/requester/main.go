package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080/orders/", "orders endpoint")
	orderID := flag.String("order", "", "existing order id")
	flag.Parse()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(*baseURL, *orderID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(baseURL, orderID string) {
	id := orderID
	if id == "" || rand.Intn(5) == 0 {
		// почти наверняка несуществующий заказ
		id = uuid.NewString()
	}

	url := baseURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
