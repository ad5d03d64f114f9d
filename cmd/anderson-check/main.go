// anderson-check sends a single greeting through the configured gateway and
// exits 0 on success. It is a deployment smoke test; it touches no state.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MikeSquared-Agency/anderson/internal/config"
	"github.com/MikeSquared-Agency/anderson/internal/gateway"
)

func main() {
	cfg := config.Load()

	fmt.Println("--- anderson connection check ---")
	fmt.Printf("Base URL: %s\n", cfg.APIBase)
	fmt.Printf("Model: %s\n", cfg.Model)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "\nInvalid configuration: %s\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	llm := gateway.NewClient(cfg.APIKey, cfg.APIBase, cfg.Model)
	reply, err := llm.Complete(ctx, []gateway.Message{
		{Role: "user", Content: "Hello Anderson, are you online?"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError connecting to gateway:\n%s\n", err)
		os.Exit(1)
	}

	fmt.Println("\nSuccess! Response from gateway:")
	fmt.Println(reply)
}
