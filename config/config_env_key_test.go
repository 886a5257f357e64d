package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeEnvKey_NestedRealtimeKeys(t *testing.T) {
	existing := map[string]any{
		"realtime": map[string]any{
			"sendTimeout":    "5s",
			"allowedOrigins": []any{},
		},
		"rateLimit": map[string]any{
			"ingestion": map[string]any{
				"rps": 5,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "REALTIME_SENDTIMEOUT", want: "realtime.sendTimeout"},
		{envKey: "REALTIME_ALLOWEDORIGINS", want: "realtime.allowedOrigins"},
		{envKey: "RATELIMIT_INGESTION_RPS", want: "rateLimit.ingestion.rps"},
		{envKey: "RATELIMIT__INGESTION_BURST", want: "rateLimit.ingestion.burst"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
