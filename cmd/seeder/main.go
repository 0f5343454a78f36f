// cmd/seeder/main.go

// Seeder populates a running catalog API with sample items. Useful for
// local development since the store starts empty on every boot.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/pkg/logger"
)

func main() {
	var (
		apiURL = flag.String("url", "http://localhost:8000", "base URL of the catalog API")
		count  = flag.Int("count", 25, "number of sample items to create")
	)
	flag.Parse()

	slogger := logger.SetupLogger("info", "text")

	client := &http.Client{Timeout: 10 * time.Second}

	created := 0
	for i := 0; i < *count; i++ {
		payload := sampleItem(i)

		body, err := json.Marshal(payload)
		if err != nil {
			slogger.Error("failed to marshal payload", slog.String("error", err.Error()))
			os.Exit(1)
		}

		resp, err := client.Post(*apiURL+"/items", "application/json", bytes.NewReader(body))
		if err != nil {
			slogger.Error("request failed",
				slog.String("url", *apiURL),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			slogger.Warn("item rejected",
				slog.String("name", payload.Name),
				slog.Int("status", resp.StatusCode))
			continue
		}
		created++
	}

	slogger.Info("seeding complete",
		slog.Int("requested", *count),
		slog.Int("created", created))
}

var sampleNames = []string{
	"Mechanical Keyboard",
	"Walnut Desk Organizer",
	"USB-C Docking Station",
	"Ceramic Pour-Over Set",
	"Noise Cancelling Headphones",
	"Standing Desk Mat",
	"Brass Desk Lamp",
	"Leather Notebook Cover",
	"Wireless Trackball",
	"Monitor Light Bar",
}

func sampleItem(i int) domain.ItemCreate {
	name := fmt.Sprintf("%s #%d", sampleNames[i%len(sampleNames)], i+1)
	desc := fmt.Sprintf("Sample catalog item %d, seeded for development", i+1)
	qty := i % 5

	return domain.ItemCreate{
		Name:        name,
		Description: &desc,
		Price:       9.99 + float64(i)*2.5,
		Quantity:    &qty,
	}
}
