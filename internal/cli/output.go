package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// timedResponse wraps command output with the request duration, matching
// the shape scripted consumers of the CLI already parse.
type timedResponse struct {
	Time     float64     `json:"time"`
	Response interface{} `json:"response"`
}

// runTimed executes the request logic, then prints its result wrapped in
// the timed JSON envelope on stdout.
func runTimed(fn func() (interface{}, error)) error {
	start := time.Now()
	response, err := fn()
	if err != nil {
		return err
	}
	return printTimed(time.Since(start), response)
}

func printTimed(elapsed time.Duration, response interface{}) error {
	return printJSON(timedResponse{
		Time:     elapsed.Seconds(),
		Response: response,
	})
}

// printJSON pretty-prints a value to stdout without the timing envelope.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
