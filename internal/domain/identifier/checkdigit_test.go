package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	t.Run("computes check digit with weight 3 on leftmost digit", func(t *testing.T) {
		// 1*3+2+3*3+4+5*3+6+7*3 = 60 -> (10-0)%10 = 0
		d, err := CheckDigit("1234567")
		require.NoError(t, err)
		assert.Equal(t, 0, d)
	})

	t.Run("computes check digit for gtin13 payload", func(t *testing.T) {
		// sum("123456700042") = 74 -> 6
		d, err := CheckDigit("123456700042")
		require.NoError(t, err)
		assert.Equal(t, 6, d)
	})

	t.Run("sum divisible by ten yields zero not ten", func(t *testing.T) {
		d, err := CheckDigit("0")
		require.NoError(t, err)
		assert.Equal(t, 0, d)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := CheckDigit("9876543210")
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := CheckDigit("9876543210")
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := CheckDigit("")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects non-numeric payload", func(t *testing.T) {
		for _, payload := range []string{"12a4", " 123", "123 ", "-123", "12.3"} {
			_, err := CheckDigit(payload)
			assert.ErrorIs(t, err, ErrInvalidInput, "payload %q", payload)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("accepts code with correct check digit", func(t *testing.T) {
		assert.True(t, Validate("1234567000426"))
		assert.True(t, Validate("12345670"))
	})

	t.Run("rejects code with wrong check digit", func(t *testing.T) {
		for d := byte('0'); d <= '9'; d++ {
			code := "123456700042" + string(d)
			if d == '6' {
				continue
			}
			assert.False(t, Validate(code), "code %s", code)
		}
	})

	t.Run("flipping any payload digit invalidates the code", func(t *testing.T) {
		code := "1234567000426"
		for i := 0; i < len(code)-1; i++ {
			flipped := []byte(code)
			flipped[i] = '0' + (flipped[i]-'0'+1)%10
			assert.False(t, Validate(string(flipped)), "code %s", flipped)
		}
	})

	t.Run("rejects non-numeric and empty input without error", func(t *testing.T) {
		assert.False(t, Validate(""))
		assert.False(t, Validate("12a45"))
		assert.False(t, Validate("1234-5670"))
	})

	t.Run("single digit validates against the empty payload", func(t *testing.T) {
		// CheckDigit of an empty payload is 0, so "0" is the only
		// valid one-digit code
		assert.True(t, Validate("0"))
		for d := byte('1'); d <= '9'; d++ {
			assert.False(t, Validate(string(d)), "code %s", string(d))
		}
	})

	t.Run("round trips generated payloads", func(t *testing.T) {
		payloads := []string{"123456700042", "0000000000001", "999999999999", "42"}
		for _, p := range payloads {
			d, err := CheckDigit(p)
			require.NoError(t, err)
			assert.True(t, Validate(p+string(byte('0'+d))), "payload %s", p)
		}
	})
}
