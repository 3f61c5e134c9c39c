package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/fdbtuple/format"
	"github.com/arloliu/fdbtuple/item"
	"github.com/google/uuid"
)

// parseElement parses one command line tuple element of the form
// [type:]value. Without a type prefix the value is an integer when it parses
// as one, nil when it is "nil", and text otherwise.
func parseElement(arg string) (item.Value, error) {
	kind, val, found := strings.Cut(arg, ":")
	if !found {
		return parseUntyped(arg), nil
	}

	switch kind {
	case "int":
		n, err := strconv.ParseInt(val, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}

		return item.Int(n), nil
	case "uint":
		n, err := strconv.ParseUint(val, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}

		return item.MustOf(n), nil
	case "str":
		return item.String(val), nil
	case "bytes":
		b, err := hex.DecodeString(val)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}

		return item.Bytes(b), nil
	case "bool":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}

		return item.Bool(b), nil
	case "f32":
		f, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}

		return item.Float32(f), nil
	case "f64":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}

		return item.Float64(f), nil
	case "uuid":
		u, err := uuid.Parse(val)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}

		return item.UUID(u), nil
	default:
		// "a:b" with an unknown prefix is plain text
		return parseUntyped(arg), nil
	}
}

func parseUntyped(arg string) item.Value {
	if arg == "nil" {
		return item.Null{}
	}
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return item.Int(n)
	}

	return item.String(arg)
}

func parseTuple(args []string) (item.Tuple, error) {
	t := make(item.Tuple, 0, len(args))
	for _, arg := range args {
		v, err := parseElement(arg)
		if err != nil {
			return nil, err
		}
		t = append(t, v)
	}

	return t, nil
}

func parseCompression(name string) (format.CompressionType, error) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		if strings.EqualFold(name, ct.String()) {
			return ct, nil
		}
	}

	return 0, fmt.Errorf("unknown compression %q", name)
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.ReplaceAll(s, " ", "")

	return hex.DecodeString(s)
}
