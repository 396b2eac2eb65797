package service

import (
	"testing"

	"github.com/hil-broker/broker/internal/config"
)

func TestSelectRouter(t *testing.T) {
	directory := config.Router{
		"default": {Endpoint: "default.example.com:8083"},
		"rack-a": {
			Endpoint: "rack-a.example.com:8083",
			Labels:   map[string]string{"rack": "a"},
		},
		"rack-b": {
			Endpoint: "rack-b.example.com:8083",
			Labels:   map[string]string{"rack": "b"},
		},
	}

	tests := []struct {
		name           string
		routers        config.Router
		exporterLabels map[string]string
		wantName       string
		wantErr        bool
	}{
		{
			name:           "label affinity picks the matching entry",
			routers:        directory,
			exporterLabels: map[string]string{"rack": "b", "board": "mock"},
			wantName:       "rack-b",
		},
		{
			name:           "no affinity falls back to default",
			routers:        directory,
			exporterLabels: map[string]string{"board": "mock"},
			wantName:       "default",
		},
		{
			name: "no default falls back to first sorted entry",
			routers: config.Router{
				"zeta":  {Endpoint: "zeta.example.com:8083"},
				"alpha": {Endpoint: "alpha.example.com:8083"},
			},
			exporterLabels: nil,
			wantName:       "alpha",
		},
		{
			name: "two matching entries pick the first sorted name",
			routers: config.Router{
				"second": {Endpoint: "second.example.com:8083", Labels: map[string]string{"rack": "a"}},
				"first":  {Endpoint: "first.example.com:8083", Labels: map[string]string{"rack": "a"}},
			},
			exporterLabels: map[string]string{"rack": "a"},
			wantName:       "first",
		},
		{
			name:           "empty directory is an error",
			routers:        config.Router{},
			exporterLabels: nil,
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, entry, err := selectRouter(tt.routers, tt.exporterLabels)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("selectRouter: %v", err)
			}
			if name != tt.wantName {
				t.Fatalf("router = %q, want %q", name, tt.wantName)
			}
			if entry.Endpoint != tt.routers[tt.wantName].Endpoint {
				t.Fatalf("endpoint = %q, want %q", entry.Endpoint, tt.routers[tt.wantName].Endpoint)
			}
		})
	}
}
