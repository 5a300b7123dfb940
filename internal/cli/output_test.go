package cli

import (
	"encoding/json"
	"testing"
)

func TestTimedResponseShape(t *testing.T) {
	data, err := json.Marshal(timedResponse{
		Time:     0.25,
		Response: map[string]string{"status": "ok"},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded struct {
		Time     float64           `json:"time"`
		Response map[string]string `json:"response"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Time != 0.25 {
		t.Errorf("time = %v, want 0.25", decoded.Time)
	}
	if decoded.Response["status"] != "ok" {
		t.Errorf("response = %v", decoded.Response)
	}
}

func TestRunTimedPropagatesError(t *testing.T) {
	wantErr := json.Unmarshal([]byte("x"), &struct{}{})
	err := runTimed(func() (interface{}, error) {
		return nil, wantErr
	})
	if err != wantErr {
		t.Errorf("runTimed = %v, want the request error", err)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "single", input: "action", want: 1},
		{name: "several with spaces", input: "action, adventure ,puzzle", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitList(tt.input); len(got) != tt.want {
				t.Errorf("splitList(%q) = %v, want %d items", tt.input, got, tt.want)
			}
		})
	}
}
