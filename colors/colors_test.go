package colors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jlv/colors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		wantSeq     string
		expectError bool
	}{
		"ansi red": {
			input:   "red",
			wantSeq: "\x1b[31m",
		},
		"ansi bright blue": {
			input:   "bright blue",
			wantSeq: "\x1b[94m",
		},
		"hex long": {
			input:   "#ff0000",
			wantSeq: "\x1b[38;2;255;0;0m",
		},
		"hex short": {
			input:   "#fff",
			wantSeq: "\x1b[38;2;255;255;255m",
		},
		"css name": {
			input:   "alice blue",
			wantSeq: "\x1b[38;2;240;248;255m",
		},
		"css rebecca purple": {
			input:   "rebecca purple",
			wantSeq: "\x1b[38;2;102;51;153m",
		},
		"xterm user slot": {
			input:   "user bright cyan",
			wantSeq: "\x1b[38;5;14m",
		},
		"unknown": {
			input:       "definitely not a color",
			expectError: true,
		},
		"case sensitive": {
			input:       "Red",
			expectError: true,
		},
		"bad hex": {
			input:       "#zzz",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := colors.Parse(tc.input)
			if tc.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, colors.ErrUnknownColor)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantSeq, colors.NewStyle().Foreground(c).Begin())
		})
	}
}

func TestStyle(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		style colors.Style
		want  string
	}{
		"empty": {
			style: colors.NewStyle(),
			want:  "",
		},
		"foreground": {
			style: colors.NewStyle().Foreground(colors.Cyan),
			want:  "\x1b[36m",
		},
		"background": {
			style: colors.NewStyle().Background(colors.Red),
			want:  "\x1b[41m",
		},
		"bright background": {
			style: colors.NewStyle().Background(colors.BrightBlack),
			want:  "\x1b[100m",
		},
		"dimmed": {
			style: colors.NewStyle().Dimmed(),
			want:  "\x1b[2m",
		},
		"bold foreground": {
			style: colors.NewStyle().Bold().Foreground(colors.Red),
			want:  "\x1b[1;31m",
		},
		"dimmed cyan": {
			style: colors.NewStyle().Foreground(colors.Cyan).Dimmed(),
			want:  "\x1b[2;36m",
		},
		"xterm foreground": {
			style: colors.NewStyle().Foreground(colors.Xterm(142)),
			want:  "\x1b[38;5;142m",
		},
		"rgb on ansi": {
			style: colors.NewStyle().Foreground(colors.RGB(1, 2, 3)).Background(colors.Blue),
			want:  "\x1b[38;2;1;2;3;44m",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.style.Begin())
			assert.Equal(t, tc.want == "", tc.style.Empty())
		})
	}
}

func TestStylePaint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", colors.NewStyle().Paint("plain"))
	assert.Equal(t, "\x1b[31mhot\x1b[0m",
		colors.NewStyle().Foreground(colors.Red).Paint("hot"))
}
