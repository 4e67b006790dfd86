package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/unclebandit/customer-viewer/internal/client"
	"github.com/unclebandit/customer-viewer/internal/config"
	"github.com/unclebandit/customer-viewer/internal/queue"
	"github.com/unclebandit/customer-viewer/internal/viewer"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	// screen writes come from the prompt loop and from fetch goroutines
	var screen sync.Mutex
	var v *viewer.Viewer
	redraw := func() {
		screen.Lock()
		defer screen.Unlock()
		fmt.Print("\033[H\033[2J")
		if err := viewer.Render(os.Stdout, v.Snapshot()); err != nil {
			log.Println("⚠️ Render failed:", err)
		}
		fmt.Print("> ")
	}

	v = viewer.New(context.Background(), client.New(cfg.GatewayURL, cfg.FetchTimeout), viewer.Options{
		Location:     loc,
		DiscardStale: cfg.DiscardStale,
		OnChange:     redraw,
	})

	if cfg.AMQPURL != "" {
		q, err := queue.DialAMQP(cfg.AMQPURL)
		if err != nil {
			log.Println("⚠️ Live refresh disabled:", err)
		} else {
			defer q.Close()
			if err := v.RefreshOn(q); err != nil {
				log.Println("⚠️ Live refresh disabled:", err)
			}
		}
	}

	v.Refresh()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		msg, quit, err := v.Execute(scanner.Text())
		if quit {
			return
		}
		if err != nil {
			msg = err.Error()
		}
		if msg != "" {
			screen.Lock()
			fmt.Println(msg)
			fmt.Print("> ")
			screen.Unlock()
		}
	}
}
