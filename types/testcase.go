package types

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// ThresholdKey is the entry of a test case holding n and k.
const ThresholdKey = "keys"

// numeral is a base as found in the input. Both "10" and 10 are accepted.
type numeral string

func (n *numeral) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		*n = numeral(s)
		return nil
	}
	*n = numeral(data)
	return nil
}

func (n *numeral) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return xerrors.Errorf("base must be a scalar, line %d", value.Line)
	}
	*n = numeral(value.Value)
	return nil
}

// parse returns the base as an integer in [2, 36].
func (n numeral) parse() (int, error) {
	s := strings.TrimSpace(string(n))
	base, err := strconv.Atoi(s)
	if err != nil || base < 2 || base > 36 {
		return 0, &InvalidBaseError{Base: s}
	}
	return base, nil
}

type rawPoint struct {
	Base  numeral `json:"base" yaml:"base"`
	Value string  `json:"value" yaml:"value"`
}

// LoadTestCase reads a test case from a file. Files ending in .yaml or .yml
// are decoded as YAML, anything else as JSON.
func LoadTestCase(path string) (TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TestCase{}, xerrors.Errorf("failed to read %s: %v", path, err)
	}

	var tc TestCase
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		tc, err = ParseTestCaseYAML(data)
	default:
		tc, err = ParseTestCaseJSON(data)
	}
	if err != nil {
		return TestCase{}, xerrors.Errorf("failed to parse %s: %w", path, err)
	}
	return tc, nil
}

// ParseTestCaseJSON decodes a JSON test case.
func ParseTestCaseJSON(data []byte) (TestCase, error) {
	var raw map[string]json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return TestCase{}, xerrors.Errorf("invalid json: %v", err)
	}

	keysRaw, ok := raw[ThresholdKey]
	if !ok {
		return TestCase{}, xerrors.Errorf("missing %q entry", ThresholdKey)
	}
	var keys Threshold
	err = json.Unmarshal(keysRaw, &keys)
	if err != nil {
		return TestCase{}, xerrors.Errorf("invalid %q entry: %v", ThresholdKey, err)
	}

	points := make(map[string]rawPoint, len(raw)-1)
	for key, value := range raw {
		if key == ThresholdKey {
			continue
		}
		var p rawPoint
		err := json.Unmarshal(value, &p)
		if err != nil {
			return TestCase{}, xerrors.Errorf("invalid point %q: %v", key, err)
		}
		points[key] = p
	}

	return newTestCase(keys, points)
}

// ParseTestCaseYAML decodes a YAML test case with the same layout as the
// JSON one.
func ParseTestCaseYAML(data []byte) (TestCase, error) {
	var raw map[string]yaml.Node
	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return TestCase{}, xerrors.Errorf("invalid yaml: %v", err)
	}

	keysNode, ok := raw[ThresholdKey]
	if !ok {
		return TestCase{}, xerrors.Errorf("missing %q entry", ThresholdKey)
	}
	var keys Threshold
	err = keysNode.Decode(&keys)
	if err != nil {
		return TestCase{}, xerrors.Errorf("invalid %q entry: %v", ThresholdKey, err)
	}

	points := make(map[string]rawPoint, len(raw)-1)
	for key, node := range raw {
		if key == ThresholdKey {
			continue
		}
		var p rawPoint
		err := node.Decode(&p)
		if err != nil {
			return TestCase{}, xerrors.Errorf("invalid point %q: %v", key, err)
		}
		points[key] = p
	}

	return newTestCase(keys, points)
}

// newTestCase validates the decoded entries and builds the test case.
func newTestCase(keys Threshold, raw map[string]rawPoint) (TestCase, error) {
	if keys.K < 1 || keys.N < 0 {
		return TestCase{}, xerrors.Errorf("n=%d, k=%d: %w", keys.N, keys.K, ErrInvalidThreshold)
	}

	tc := TestCase{
		Keys:   keys,
		Points: make(map[int]EncodedPoint, len(raw)),
	}
	for key, p := range raw {
		x, err := strconv.Atoi(key)
		if err != nil || x < 1 {
			return TestCase{}, xerrors.Errorf("%q: %w", key, ErrInvalidKey)
		}
		_, dup := tc.Points[x]
		if dup {
			return TestCase{}, xerrors.Errorf("%q appears twice: %w", key, ErrInvalidKey)
		}
		base, err := p.Base.parse()
		if err != nil {
			return TestCase{}, xerrors.Errorf("point %q: %w", key, err)
		}
		tc.Points[x] = EncodedPoint{Base: base, Value: p.Value}
	}

	return tc, nil
}

// MarshalJSON writes the test case back in its input layout. Keys are
// emitted in ascending order by encoding/json.
func (tc TestCase) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(tc.Points)+1)
	out[ThresholdKey] = tc.Keys
	for key, p := range tc.Points {
		out[strconv.Itoa(key)] = map[string]string{
			"base":  strconv.Itoa(p.Base),
			"value": p.Value,
		}
	}
	return json.Marshal(out)
}
