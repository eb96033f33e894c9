package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
)

func TestLanguageFlags(t *testing.T) {
	var f LanguageFlags
	c := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	f.AddTo(c, true)

	require.NoError(t, c.Flags().Parse([]string{"-l", "  TypeScript "}))
	assert.Equal(t, "typescript", f.Normalized())

	flag := c.Flags().Lookup("language")
	require.NotNil(t, flag)
	assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])
}

func TestOutputFlags_Parse(t *testing.T) {
	tests := []struct {
		in      string
		want    output.OutputFormat
		wantErr bool
	}{
		{in: "table", want: output.FormatTable},
		{in: "JSON", want: output.FormatJSON},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := OutputFlags{Format: tt.in}
			got, err := f.Parse()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
