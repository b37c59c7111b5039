package common

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/oasisprotocol/rdrand/common/cbor"
	"github.com/oasisprotocol/rdrand/common/prettyprint"
	"github.com/oasisprotocol/rdrand/rdrand-tool/cmd/common/flags"
)

const (
	// FormatText prints one value per line, integers in fixed width hex
	// and byte strings as a single hex string.
	FormatText = "text"
	// FormatJSON prints pretty JSON, byte strings hex encoded.
	FormatJSON = "json"
	// FormatCBOR writes canonical CBOR.
	FormatCBOR = "cbor"
)

// ValidateOutputFormat checks the output format flag.
func ValidateOutputFormat() error {
	switch f := flags.OutputFormat(); f {
	case FormatText, FormatJSON, FormatCBOR:
		return nil
	default:
		return fmt.Errorf("unsupported output format: '%s'", f)
	}
}

// WriteOutput writes v to w in the configured output format.
func WriteOutput(w io.Writer, v interface{}) error {
	switch f := flags.OutputFormat(); f {
	case FormatText:
		return writeText(w, v)
	case FormatJSON:
		return writeJSON(w, v)
	case FormatCBOR:
		_, err := w.Write(cbor.Marshal(v))
		return err
	default:
		return fmt.Errorf("unsupported output format: '%s'", f)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	if b, ok := v.([]byte); ok {
		v = hex.EncodeToString(b)
	}
	formatted, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to pretty JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", formatted)
	return err
}

func writeText(w io.Writer, v interface{}) error {
	var err error
	switch t := v.(type) {
	case prettyprint.PrettyPrinter:
		t.PrettyPrint("", w)
	case []byte:
		_, err = fmt.Fprintln(w, hex.EncodeToString(t))
	case []uint16:
		for _, x := range t {
			if _, err = fmt.Fprintf(w, "%04x\n", x); err != nil {
				return err
			}
		}
	case []uint32:
		for _, x := range t {
			if _, err = fmt.Fprintf(w, "%08x\n", x); err != nil {
				return err
			}
		}
	case []uint64:
		for _, x := range t {
			if _, err = fmt.Fprintf(w, "%016x\n", x); err != nil {
				return err
			}
		}
	case []int32:
		for _, x := range t {
			if _, err = fmt.Fprintf(w, "%d\n", x); err != nil {
				return err
			}
		}
	default:
		_, err = fmt.Fprintln(w, v)
	}
	return err
}
