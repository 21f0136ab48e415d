package output

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroomhq/greenroom/internal/utils/ptr"
)

type sampleRecord struct {
	Name    string  `json:"name"`
	Company *string `json:"company"`
	Hidden  string  `json:"-"`
	Count   int     `json:"talk_count"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"table", FormatTable, false},
		{"", Format(""), false},
		{"xml", Format(""), true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	require.NoError(t, f.Format(&buf, sampleRecord{Name: "Jane Doe", Count: 2}))

	out := buf.String()
	assert.Contains(t, out, "\"name\": \"Jane Doe\"")
	assert.Contains(t, out, "\"company\": null")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)

	require.NoError(t, f.Format(&buf, map[string]string{"name": "Jane Doe"}))
	assert.Equal(t, "name: Jane Doe\n", buf.String())
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	err := f.Format(&buf, Data{
		Headers: []string{"Speaker", "Talk"},
		Rows: [][]string{
			{"Jane Doe", "Reactivity Deep Dive"},
			{"Sam Lee", "Vite Plugins"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Vite Plugins")
	assert.Contains(t, strings.ToUpper(out), "SPEAKER")
}

func TestKeyValue(t *testing.T) {
	kv := KeyValue(sampleRecord{
		Name:    "Jane Doe",
		Company: ptr.String("Acme"),
		Hidden:  "nope",
		Count:   2,
	})
	require.NotNil(t, kv)

	assert.Equal(t, []string{"Property", "Value"}, kv.Headers)
	assert.Equal(t, [][]string{
		{"Name", "Jane Doe"},
		{"Company", "Acme"},
		{"Talk Count", "2"},
	}, kv.Rows)
}

func TestKeyValueNilPointerField(t *testing.T) {
	kv := KeyValue(&sampleRecord{Name: "Sam Lee"})
	require.NotNil(t, kv)
	assert.Contains(t, kv.Rows, []string{"Company", ""})
}

func TestKeyValueNonStruct(t *testing.T) {
	assert.Nil(t, KeyValue([]string{"not", "a", "struct"}))
	assert.Nil(t, KeyValue(nil))
}

func TestFormatterFunc(t *testing.T) {
	var buf bytes.Buffer
	f := FormatterFunc(func(w io.Writer, data any) error {
		_, err := w.Write([]byte("custom"))
		return err
	})

	require.NoError(t, f.Format(&buf, nil))
	assert.Equal(t, "custom", buf.String())
}
