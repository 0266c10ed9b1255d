package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatPlain = "plain"
)

func checkFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case formatTable, formatJSON, formatPlain:
		return f, nil
	}

	return "", fmt.Errorf("unsupported --format %q (want table, json or plain)", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
