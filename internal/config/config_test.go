package config

import "testing"

func TestValidateEndpoint(t *testing.T) {
	cases := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{"missing", "", true},
		{"whitespace", "   ", true},
		{"placeholder", "https://script.example.com/macros/s/W1W2W3/exec", true},
		{"configured", "https://script.example.com/macros/s/real-deployment/exec", false},
	}
	for _, tc := range cases {
		cfg := Config{OrderEndpoint: tc.endpoint}
		err := cfg.ValidateEndpoint()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected a configuration error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: expected no error, got %v", tc.name, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.Addr == "" {
		t.Fatalf("expected a default listen address")
	}
	if cfg.ChatModel == "" {
		t.Fatalf("expected a default chat model")
	}
}
