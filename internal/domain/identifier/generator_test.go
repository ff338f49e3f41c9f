package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	cfg := Config{CompanyPrefix: "1234567", LocationReference: "1"}

	t.Run("gtin13 layout", func(t *testing.T) {
		code, err := Generate(FormatGTIN13, cfg, 42)
		require.NoError(t, err)
		assert.Equal(t, "1234567000426", code)
		assert.Len(t, code, 13)
		assert.True(t, Validate(code))
	})

	t.Run("gtin14 layout prepends indicator digit", func(t *testing.T) {
		code, err := Generate(FormatGTIN14, cfg, 42)
		require.NoError(t, err)
		assert.Equal(t, "11234567000425", code)
		assert.Len(t, code, 14)
		assert.True(t, Validate(code))
	})

	t.Run("sscc layout includes location reference", func(t *testing.T) {
		code, err := Generate(FormatSSCC, cfg, 42)
		require.NoError(t, err)
		assert.Equal(t, "0123456701000427", code)
		assert.Len(t, code, 16)
		assert.True(t, Validate(code))
	})

	t.Run("pads short components with leading zeros", func(t *testing.T) {
		code, err := Generate(FormatGTIN13, Config{CompanyPrefix: "42"}, 7)
		require.NoError(t, err)
		assert.Equal(t, "000004200007", code[:12])
		assert.True(t, Validate(code))
	})

	t.Run("never truncates overlong components", func(t *testing.T) {
		code, err := Generate(FormatGTIN13, Config{CompanyPrefix: "123456789"}, 123456)
		require.NoError(t, err)
		assert.Len(t, code, 16)
		assert.Contains(t, code, "123456789")
		assert.Contains(t, code, "123456")
		assert.True(t, Validate(code))
	})

	t.Run("requires company prefix for every format", func(t *testing.T) {
		for _, f := range []Format{FormatGTIN13, FormatGTIN14, FormatSSCC} {
			_, err := Generate(f, Config{LocationReference: "1"}, 1)
			assert.ErrorIs(t, err, ErrMissingConfiguration, "format %s", f)
		}
	})

	t.Run("requires location reference for sscc only", func(t *testing.T) {
		noLoc := Config{CompanyPrefix: "1234567"}

		_, err := Generate(FormatSSCC, noLoc, 1)
		assert.ErrorIs(t, err, ErrMissingConfiguration)

		_, err = Generate(FormatGTIN13, noLoc, 1)
		assert.NoError(t, err)
		_, err = Generate(FormatGTIN14, noLoc, 1)
		assert.NoError(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := Generate(Format("ean8"), cfg, 1)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("consecutive sequences produce distinct valid codes", func(t *testing.T) {
		seen := make(map[string]bool)
		for seq := int64(1); seq <= 50; seq++ {
			code, err := Generate(FormatGTIN13, cfg, seq)
			require.NoError(t, err)
			assert.True(t, Validate(code))
			assert.False(t, seen[code], "duplicate %s", code)
			seen[code] = true
		}
	})
}
