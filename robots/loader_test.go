package robots_test

import (
	"os"
	"testing"

	"github.com/marcelsud/robot-notify/robots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRobotsFile(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "robots-*.yaml")
	require.NoError(t, err)

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

func TestLoader_Load(t *testing.T) {
	t.Run("success - valid robots file", func(t *testing.T) {
		t.Setenv("OPS_ROBOT_SECRET", "SECfromenv")
		path := writeRobotsFile(t, `
robots:
  - robot_id: "ops"
    webhook: "https://oapi.dingtalk.com/robot/send?access_token=ops"
    secret_env: "OPS_ROBOT_SECRET"
    description: "ops alerts"
  - robot_id: "dev"
    webhook: "https://oapi.dingtalk.com/robot/send?access_token=dev"
    secret: "SECinline"
`)

		loader := robots.NewLoader()
		require.NoError(t, loader.Load(path))

		all := loader.List()
		require.Len(t, all, 2)
		assert.Equal(t, "dev", all[0].RobotID)
		assert.Equal(t, "ops", all[1].RobotID)

		ops, err := loader.Get("ops")
		require.NoError(t, err)
		assert.Equal(t, "ops alerts", ops.Description)
		assert.Equal(t, "env:OPS_ROBOT_SECRET", ops.SecretSource())
		assert.Equal(t, "https://oapi.dingtalk.com/robot/send?access_token=%2A%2A%2A", ops.RedactedWebhook())
		secret, err := ops.Secret()
		require.NoError(t, err)
		assert.Equal(t, "SECfromenv", secret)

		dev, err := loader.Get("dev")
		require.NoError(t, err)
		assert.Equal(t, "inline", dev.SecretSource())
		secret, err = dev.Secret()
		require.NoError(t, err)
		assert.Equal(t, "SECinline", secret)

		assert.True(t, loader.Exists("ops"))
		assert.False(t, loader.Exists("qa"))
	})

	t.Run("success - reload replaces previous robots", func(t *testing.T) {
		first := writeRobotsFile(t, `
robots:
  - robot_id: "ops"
    webhook: "https://oapi.dingtalk.com/robot/send?access_token=ops"
    secret: "SECops"
  - robot_id: "dev"
    webhook: "https://oapi.dingtalk.com/robot/send?access_token=dev"
    secret: "SECdev"
`)
		second := writeRobotsFile(t, `
robots:
  - robot_id: "dev"
    webhook: "https://oapi.dingtalk.com/robot/send?access_token=dev2"
    secret: "SECdev2"
`)

		loader := robots.NewLoader()
		require.NoError(t, loader.Load(first))
		require.NoError(t, loader.Load(second))

		assert.False(t, loader.Exists("ops"))
		require.Len(t, loader.List(), 1)
		dev, err := loader.Get("dev")
		require.NoError(t, err)
		assert.Equal(t, "https://oapi.dingtalk.com/robot/send?access_token=dev2", dev.Webhook)
	})

	t.Run("error - failed reload keeps previous robots", func(t *testing.T) {
		good := writeRobotsFile(t, `
robots:
  - robot_id: "ops"
    webhook: "https://oapi.dingtalk.com/robot/send?access_token=ops"
    secret: "SECops"
`)
		bad := writeRobotsFile(t, `
robots:
  - robot_id: "qa"
    webhook: "https://oapi.dingtalk.com/robot/send?access_token=qa"
    secret: "not-a-robot-secret"
`)

		loader := robots.NewLoader()
		require.NoError(t, loader.Load(good))
		require.Error(t, loader.Load(bad))

		assert.True(t, loader.Exists("ops"))
		assert.False(t, loader.Exists("qa"))
	})

	t.Run("error - file not found", func(t *testing.T) {
		err := robots.NewLoader().Load("nonexistent.yaml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading robots file")
	})

	t.Run("error - invalid YAML", func(t *testing.T) {
		path := writeRobotsFile(t, `invalid yaml content: [[[`)

		err := robots.NewLoader().Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing robots YAML")
	})

	t.Run("error - robot not found", func(t *testing.T) {
		_, err := robots.NewLoader().Get("missing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "robot not found")
	})
}

func TestLoader_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "missing robot_id",
			content: `
robots:
  - webhook: "https://example.com/robot"
    secret: "SECx"
`,
			errMsg: "robot_id cannot be empty",
		},
		{
			name: "missing webhook",
			content: `
robots:
  - robot_id: "a"
    secret: "SECx"
`,
			errMsg: "webhook cannot be empty",
		},
		{
			name: "relative webhook",
			content: `
robots:
  - robot_id: "a"
    webhook: "/robot/send"
    secret: "SECx"
`,
			errMsg: "absolute http(s) URL",
		},
		{
			name: "no secret source",
			content: `
robots:
  - robot_id: "a"
    webhook: "https://example.com/robot"
`,
			errMsg: "exactly one of secret or secret_env",
		},
		{
			name: "both secret sources",
			content: `
robots:
  - robot_id: "a"
    webhook: "https://example.com/robot"
    secret: "SECx"
    secret_env: "A_SECRET"
`,
			errMsg: "exactly one of secret or secret_env",
		},
		{
			name: "secret without prefix",
			content: `
robots:
  - robot_id: "a"
    webhook: "https://example.com/robot"
    secret: "hunter2"
`,
			errMsg: "secret must start with SEC",
		},
		{
			name: "unset secret env",
			content: `
robots:
  - robot_id: "a"
    webhook: "https://example.com/robot"
    secret_env: "ROBOT_NOTIFY_TEST_UNSET_SECRET"
`,
			errMsg: "is not set for robot a",
		},
		{
			name: "duplicate robot_id",
			content: `
robots:
  - robot_id: "a"
    webhook: "https://example.com/robot"
    secret: "SECx"
  - robot_id: "a"
    webhook: "https://example.com/other"
    secret: "SECy"
`,
			errMsg: "duplicate robot_id",
		},
	}

	for _, tc := range cases {
		t.Run("error - "+tc.name, func(t *testing.T) {
			loader := robots.NewLoader()

			err := loader.Load(writeRobotsFile(t, tc.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
			assert.Empty(t, loader.List())
		})
	}
}
