package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/robot-notify/robots"
)

/* validate-robots - Standalone CLI tool to validate robots.yaml
 * Usage: go run cmd/validate-robots/main.go [robots.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 * Secrets are never printed, only where they come from
 */

func main() {
	robotsFile := "robots.yaml"
	if len(os.Args) > 1 {
		robotsFile = os.Args[1]
	}

	fmt.Printf("Validating robots file: %s\n", robotsFile)
	fmt.Println(strings.Repeat("-", 50))

	loader := robots.NewLoader()
	if err := loader.Load(robotsFile); err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loaded := loader.List()
	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d robot(s):\n", len(loaded))

	for i, rb := range loaded {
		fmt.Printf("\n%d. Robot: %s\n", i+1, rb.RobotID)
		fmt.Printf("   Webhook:       %s\n", rb.RedactedWebhook())
		fmt.Printf("   Secret source: %s\n", rb.SecretSource())
		if rb.Description != "" {
			fmt.Printf("   Description:   %s\n", rb.Description)
		}
	}

	fmt.Printf("\n✓ All robots are valid!\n")
}
