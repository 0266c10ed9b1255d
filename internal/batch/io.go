package batch

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/lvedit/editdist"
	"github.com/katalvlaran/lvedit/tokenize"
)

// ErrMalformedRecord is wrapped when an input line is not a usable record.
var ErrMalformedRecord = errors.New("batch: malformed record")

// maxLineBytes bounds a single JSONL record.
const maxLineBytes = 16 << 20

// Pair is one unit of work.
type Pair struct {
	ID     string
	Line   int // 1-based line number in the input, 0 when built in code
	Source []string
	Target []string
	Raw    []byte // original record; nil for pairs built in code
}

// ReadPairs parses JSON Lines. Blank lines are skipped. A record without an
// "id" gets a random UUID. String fields are tokenized with opts; arrays are
// taken as already tokenized.
func ReadPairs(r io.Reader, opts tokenize.Options) ([]Pair, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var pairs []Pair
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		if !gjson.ValidBytes(raw) {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", line, ErrMalformedRecord)
		}
		src, err := field(raw, "source", opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tgt, err := field(raw, "target", opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		id := gjson.GetBytes(raw, "id").String()
		if id == "" {
			id = uuid.NewString()
		}
		pairs = append(pairs, Pair{
			ID:     id,
			Line:   line,
			Source: src,
			Target: tgt,
			Raw:    append([]byte(nil), raw...),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pairs: %w", err)
	}

	return pairs, nil
}

// field extracts one side of a record.
func field(raw []byte, name string, opts tokenize.Options) ([]string, error) {
	res := gjson.GetBytes(raw, name)
	switch {
	case !res.Exists():
		return nil, fmt.Errorf("missing %q: %w", name, ErrMalformedRecord)
	case res.IsArray():
		items := res.Array()
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.String()
		}
		return out, nil
	case res.Type == gjson.String:
		return tokenize.Split(res.String(), opts)
	default:
		return nil, fmt.Errorf("%q must be a string or an array: %w", name, ErrMalformedRecord)
	}
}

// WriteResults writes one JSON line per result. When the pair came from
// ReadPairs, its original record is annotated; otherwise a fresh object is built.
func WriteResults(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for i := range results {
		line, err := encodeResult(&results[i])
		if err != nil {
			return err
		}
		if _, err = bw.Write(line); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		if err = bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	return bw.Flush()
}

// encodeResult sets the result fields on the record with sjson.
func encodeResult(res *Result) ([]byte, error) {
	out := res.Pair.Raw
	if len(out) == 0 {
		out = []byte(`{}`)
	}
	out = append([]byte(nil), out...)

	set := func(path string, v any) error {
		raw, err := marshalRaw(v)
		if err == nil {
			out, err = sjson.SetRawBytes(out, path, raw)
		}
		if err != nil {
			return fmt.Errorf("encode %s for %s: %w", path, res.Pair.ID, err)
		}
		return nil
	}

	if err := set("id", res.Pair.ID); err != nil {
		return nil, err
	}
	if res.Err != nil {
		if err := set("error", res.Err.Error()); err != nil {
			return nil, err
		}
		return out, nil
	}
	if err := set("distance", res.Distance); err != nil {
		return nil, err
	}
	if res.Ops == nil {
		return out, nil
	}
	if err := set("ops", editdist.Strings(res.Ops)); err != nil {
		return nil, err
	}
	if err := set("aligned_source", res.AlignedSource); err != nil {
		return nil, err
	}
	if err := set("aligned_target", res.AlignedTarget); err != nil {
		return nil, err
	}
	c := editdist.Summarize(res.Ops)
	if err := set("error_rate", c.ErrorRate()); err != nil {
		return nil, err
	}

	return out, nil
}

// marshalRaw encodes v without HTML escaping so "<MAT>" stays readable.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
