package output_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yacoob/aib2ofx/pkg/output"
)

func TestDataURIRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("ab"),
		[]byte(strings.Repeat("OFX", 1000)),
		[]byte("zażółć gęślą jaźń"), // multibyte UTF-8
		{0x00, 0xff, 0x10},
	}

	for _, input := range inputs {
		uri := output.DataURI(input)
		require.True(t, strings.HasPrefix(uri, "data:application/octet-stream;base64,"))

		encoded := strings.TrimPrefix(uri, "data:application/octet-stream;base64,")
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		require.Equal(t, input, decoded)
	}
}

func TestDataURIKnownValue(t *testing.T) {
	require.Equal(t,
		"data:application/octet-stream;base64,T0ZY",
		output.DataURI([]byte("OFX")))
}
