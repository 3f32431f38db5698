package main

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockS3ConfigUnitSuite struct {
	suite.Suite
}

func (s *MockS3ConfigUnitSuite) TestParseConfig(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		environment map[string]string
		expected    Config
		expectError bool
	}{
		{
			name:        "Should fall back to defaults",
			environment: map[string]string{},
			expected:    Config{Addr: ":9090", ShutdownTimeout: 5 * time.Second},
		},
		{
			name: "Should read overrides",
			environment: map[string]string{
				"MOCK_S3_ADDR":             "127.0.0.1:9999",
				"MOCK_S3_SHUTDOWN_TIMEOUT": "1s",
			},
			expected: Config{Addr: "127.0.0.1:9999", ShutdownTimeout: time.Second},
		},
		{
			name:        "Should reject malformed timeout",
			environment: map[string]string{"MOCK_S3_SHUTDOWN_TIMEOUT": "soon"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			cfg, err := parseConfig(env.Options{Environment: tc.environment})
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(MockS3ConfigUnitSuite))
}
