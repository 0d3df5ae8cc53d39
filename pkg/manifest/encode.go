package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sierrasoftworks/humane-errors-go"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

// Format selects the serialization of the emitted manifest.
type Format string

const (
	// FormatYAML emits one YAML document per object, separated by ---.
	FormatYAML Format = "yaml"
	// FormatJSON emits a single v1 List holding all objects.
	FormatJSON Format = "json"
)

func AllFormats() []Format {
	return []Format{FormatYAML, FormatJSON}
}

func AllFormatNames() []string {
	formats := AllFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

func ParseFormat(s string) (Format, humane.Error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatYAML, nil
	}
	if !slices.Contains(AllFormats(), f) {
		return "", humane.New(fmt.Sprintf("unknown output format %q", s), "use one of: yaml, json")
	}
	return f, nil
}

// Encode validates the graph and writes it to w. Nothing is written unless
// every object serialized successfully.
func (g *Graph) Encode(w io.Writer, format Format) humane.Error {
	docs, herr := g.Documents()
	if herr != nil {
		return herr
	}

	var buf bytes.Buffer
	switch format {
	case FormatYAML, "":
		if herr := writeYAML(&buf, docs); herr != nil {
			return herr
		}
	case FormatJSON:
		if herr := writeJSON(&buf, docs); herr != nil {
			return herr
		}
	default:
		return humane.New(fmt.Sprintf("unknown output format %q", format), "use one of: yaml, json")
	}

	if _, err := io.Copy(w, &buf); err != nil {
		return humane.Wrap(err, "failed to write manifest", "check that the output destination is writable")
	}

	return nil
}

// Documents returns every object of the graph, in apply order, as an
// unstructured map stamped with its apiVersion and kind. Server populated
// fields (status, creationTimestamp) are dropped.
func (g *Graph) Documents() ([]map[string]any, humane.Error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	scheme, herr := NewScheme()
	if herr != nil {
		return nil, herr
	}

	objects := g.Objects()
	docs := make([]map[string]any, 0, len(objects))
	for _, obj := range objects {
		cp := obj.DeepCopyObject()
		if err := stampKind(scheme, cp); err != nil {
			return nil, humane.Wrap(err, fmt.Sprintf("failed to emit %s", obj.GetName()))
		}

		u, err := runtime.DefaultUnstructuredConverter.ToUnstructured(cp)
		if err != nil {
			return nil, humane.Wrap(err, fmt.Sprintf("failed to convert %s", obj.GetName()))
		}

		delete(u, "status")
		docs = append(docs, pruneNulls(u))
	}

	return docs, nil
}

func writeYAML(w io.Writer, docs []map[string]any) humane.Error {
	for i, doc := range docs {
		out, err := yaml.Marshal(doc)
		if err != nil {
			return humane.Wrap(err, "failed to marshal manifest document to yaml")
		}
		if i > 0 {
			_, _ = io.WriteString(w, "---\n")
		}
		_, _ = w.Write(out)
	}
	return nil
}

func writeJSON(w io.Writer, docs []map[string]any) humane.Error {
	list := map[string]any{
		"apiVersion": "v1",
		"kind":       "List",
		"items":      docs,
	}

	out, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return humane.Wrap(err, "failed to marshal manifest list to json")
	}
	_, _ = w.Write(append(out, '\n'))
	return nil
}

// pruneNulls removes keys whose value is nil, recursively. Zero timestamps
// convert to nil and would otherwise be emitted as null.
func pruneNulls(m map[string]any) map[string]any {
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			m[k] = pruneNulls(val)
		case []any:
			for i, item := range val {
				if im, ok := item.(map[string]any); ok {
					val[i] = pruneNulls(im)
				}
			}
		}
	}
	return m
}
