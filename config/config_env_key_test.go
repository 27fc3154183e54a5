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
		"apns": map[string]any{
			"certificatePath": "",
		},
		"wallet": map[string]any{
			"passTypeIdentifier": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "APNS_CERTIFICATEPATH", want: "apns.certificatePath"},
		{envKey: "WALLET_PASSTYPEIDENTIFIER", want: "wallet.passTypeIdentifier"},
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

func TestApplyAPNsDefaults(t *testing.T) {
	t.Run("nil config is left alone", func(t *testing.T) {
		applyAPNsDefaults(nil)
	})

	t.Run("zero values get defaults", func(t *testing.T) {
		apns := &APNsConfig{}
		applyAPNsDefaults(apns)

		if apns.Environment != APNsEnvironmentSandbox {
			t.Fatalf("environment = %q, want %q", apns.Environment, APNsEnvironmentSandbox)
		}
		if apns.RetryAttempts != defaultRetryAttempts {
			t.Fatalf("retryAttempts = %d, want %d", apns.RetryAttempts, defaultRetryAttempts)
		}
		if apns.Workers != defaultWorkers {
			t.Fatalf("workers = %d, want %d", apns.Workers, defaultWorkers)
		}
	})

	t.Run("explicit values preserved", func(t *testing.T) {
		apns := &APNsConfig{Environment: APNsEnvironmentProduction, RetryAttempts: 5}
		applyAPNsDefaults(apns)

		if apns.Environment != APNsEnvironmentProduction {
			t.Fatalf("environment = %q, want %q", apns.Environment, APNsEnvironmentProduction)
		}
		if apns.RetryAttempts != 5 {
			t.Fatalf("retryAttempts = %d, want 5", apns.RetryAttempts)
		}
	})
}
