package common

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/rdrand/common/cbor"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/flags"
)

func TestWriteOutputText(t *testing.T) {
	require := require.New(t)

	viper.Set(flags.CfgOutputFormat, FormatText)
	defer viper.Set(flags.CfgOutputFormat, FormatText)

	for _, tc := range []struct {
		v        interface{}
		expected string
	}{
		{[]byte{0xde, 0xad, 0xbe, 0xef}, "deadbeef\n"},
		{[]uint16{0x1, 0xabcd}, "0001\nabcd\n"},
		{[]uint32{0xff}, "000000ff\n"},
		{[]uint64{0x0123456789abcdef, 0}, "0123456789abcdef\n0000000000000000\n"},
		{[]int32{-3, 0, 7}, "-3\n0\n7\n"},
		{[]uint16{}, ""},
	} {
		var buf bytes.Buffer
		err := WriteOutput(&buf, tc.v)
		require.NoError(err, "WriteOutput(%v)", tc.v)
		require.Equal(tc.expected, buf.String(), "WriteOutput(%v)", tc.v)
	}
}

func TestWriteOutputJSON(t *testing.T) {
	require := require.New(t)

	viper.Set(flags.CfgOutputFormat, FormatJSON)
	defer viper.Set(flags.CfgOutputFormat, FormatText)

	var buf bytes.Buffer
	err := WriteOutput(&buf, []byte{0x01, 0x02})
	require.NoError(err, "WriteOutput")
	require.Equal("\"0102\"\n", buf.String(), "byte strings should be hex encoded")

	buf.Reset()
	err = WriteOutput(&buf, []int32{1, 6})
	require.NoError(err, "WriteOutput")
	require.Equal("[\n  1,\n  6\n]\n", buf.String())
}

func TestWriteOutputCBOR(t *testing.T) {
	require := require.New(t)

	viper.Set(flags.CfgOutputFormat, FormatCBOR)
	defer viper.Set(flags.CfgOutputFormat, FormatText)

	values := []uint64{1, 1 << 40}
	var buf bytes.Buffer
	err := WriteOutput(&buf, values)
	require.NoError(err, "WriteOutput")

	var decoded []uint64
	err = cbor.Unmarshal(buf.Bytes(), &decoded)
	require.NoError(err, "Unmarshal")
	require.Equal(values, decoded)
}

func TestValidateOutputFormat(t *testing.T) {
	require := require.New(t)

	defer viper.Set(flags.CfgOutputFormat, FormatText)

	for _, f := range []string{FormatText, FormatJSON, FormatCBOR} {
		viper.Set(flags.CfgOutputFormat, f)
		require.NoError(ValidateOutputFormat(), "format %s", f)
	}

	viper.Set(flags.CfgOutputFormat, "xml")
	require.Error(ValidateOutputFormat(), "unknown formats should be rejected")
}
