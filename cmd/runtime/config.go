package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/wovenflow/runtime/internal/cliconfig"
)

func loadCLIConfigStore() (*cliconfig.Store, error) {
	return cliconfig.Load(cliconfig.DefaultPath())
}

// cmdConfig reads and writes the persisted CLI configuration document:
// provider API keys, default provider/model, and engine limits.
func cmdConfig(args []string) int {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	set := fs.String("set", "", "key=value to set in the configuration document")
	get := fs.String("get", "", "key to print from the configuration document")
	apiKey := fs.String("api-key", "", "provider=value to store as a provider API key")
	show := fs.Bool("show", false, "print the entire configuration document")
	if err := fs.Parse(args); err != nil {
		return exitUserError
	}

	s, err := loadCLIConfigStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return exitUserError
	}

	mutated := false

	if *set != "" {
		key, value, ok := splitKV(*set)
		if !ok {
			fmt.Fprintln(os.Stderr, "config: --set requires key=value")
			return exitUserError
		}
		s.Set(key, value)
		mutated = true
	}

	if *apiKey != "" {
		provider, value, ok := splitKV(*apiKey)
		if !ok {
			fmt.Fprintln(os.Stderr, "config: --api-key requires provider=value")
			return exitUserError
		}
		s.SetAPIKey(provider, value)
		mutated = true
	}

	if *get != "" {
		v := s.Get(*get)
		if v == nil {
			fmt.Fprintf(os.Stderr, "config: %s is not set\n", *get)
			return exitUserError
		}
		fmt.Println(v)
	}

	if *show {
		printSettings(s.AllSettings(), "")
	}

	if mutated {
		if err := s.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			return exitUserError
		}
	}

	if !mutated && *get == "" && !*show {
		printSettings(s.AllSettings(), "")
	}

	return exitSuccess
}

func splitKV(raw string) (key, value string, ok bool) {
	parts := strings.SplitN(raw, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func printSettings(settings map[string]interface{}, prefix string) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := settings[k]
		if nested, ok := v.(map[string]interface{}); ok {
			printSettings(nested, prefix+k+".")
			continue
		}
		fmt.Printf("%s%s = %v\n", prefix, k, v)
	}
}
