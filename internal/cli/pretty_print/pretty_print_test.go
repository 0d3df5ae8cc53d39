package pretty_print

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/spechtlabs/nba/pkg/client/k8s"
)

func setEnvForNoTTY(t *testing.T) {
	t.Helper()
	t.Setenv("TERM", "dumb")
	t.Setenv("NO_COLOR", "1")
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(t *testing.T, s string) string {
	t.Helper()
	return ansiRegex.ReplaceAllString(s, "")
}

func TestFormatWithOptions(t *testing.T) {
	setEnvForNoTTY(t)

	tests := []struct {
		name    string
		lvl     PrintLevel
		msg     string
		context []string
		opts    []Option
		want    string
	}{
		{
			name:    "info_with_context",
			lvl:     InfoLvl,
			msg:     "Hello",
			context: []string{"ctx1", "ctx2"},
			want:    "ℹ Hello\n    ctx1\n    ctx2\n",
		},
		{
			name: "ok_without_newline",
			lvl:  OkLvl,
			msg:  "done",
			opts: []Option{WithoutNewline()},
			want: "✓ done",
		},
		{
			name:    "custom_indent_and_icon",
			lvl:     WarnLvl,
			msg:     "careful",
			context: []string{"detail"},
			opts:    []Option{WithIndentSize(2), WithIcon(WarnLvl, "⚠")},
			want:    "⚠ careful\n  detail\n",
		},
		{
			name: "unknown_level_falls_back_to_info",
			lvl:  PrintLevel(42),
			msg:  "odd",
			want: "ℹ odd\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatWithOptions(tc.lvl, tc.msg, tc.context, tc.opts...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatError(t *testing.T) {
	setEnvForNoTTY(t)

	t.Run("humane_error_with_advice_and_cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := humane.Wrap(cause, "failed to create Kubernetes client", "check your kubeconfig")

		got := stripANSI(t, FormatError(err))
		assert.Contains(t, got, "✗ failed to create Kubernetes client")
		assert.Contains(t, got, "What you can do:")
		assert.Contains(t, got, "check your kubeconfig")
		assert.Contains(t, got, "Root causes:")
		assert.Contains(t, got, "connection refused")
	})

	t.Run("plain_error", func(t *testing.T) {
		got := stripANSI(t, FormatError(errors.New("boom")))
		assert.Equal(t, "✗ boom\n", got)
	})
}

func TestFprint(t *testing.T) {
	setEnvForNoTTY(t)

	var buf bytes.Buffer
	require.Nil(t, Fprint(&buf, OkLvl, "written", "to buffer"))
	assert.Equal(t, "✓ written\n    to buffer\n", buf.String())
}

func TestFormatApplySummary(t *testing.T) {
	setEnvForNoTTY(t)

	results := []k8s.ApplyResult{
		{Ref: "Namespace nba", Operation: controllerutil.OperationResultCreated},
		{Ref: "Service nba/network-bandwidth-annotator", Operation: controllerutil.OperationResultUpdated},
	}

	got := FormatApplySummary(results, true)
	assert.Contains(t, got, "Applied (dry run)")
	assert.Contains(t, got, "created  Namespace nba")
	assert.Contains(t, got, "updated  Service nba/network-bandwidth-annotator")

	assert.NotContains(t, FormatApplySummary(results, false), "dry run")
}

func TestAllThemeNames(t *testing.T) {
	names := AllThemeNames()
	assert.Len(t, names, len(AllThemes()))
	assert.Contains(t, names, string(TokyoNightStyle))
}
