package schemaorg

import (
	"io"

	"github.com/reoring/recipeld"
)

// FromJSONBytes decodes one JSON-LD document. Malformed JSON and documents
// matching no envelope shape are returned as recipeld.Issues.
func FromJSONBytes(b []byte, opts ...recipeld.ParseOpt) (SchemaEntry, error) {
	if err := checkSize(int64(len(b)), opts); err != nil {
		return SchemaEntry{}, err
	}
	return FromSource(recipeld.JSONBytes(b), opts...)
}

// FromJSONString decodes one JSON-LD document held in a string.
func FromJSONString(s string, opts ...recipeld.ParseOpt) (SchemaEntry, error) {
	if err := checkSize(int64(len(s)), opts); err != nil {
		return SchemaEntry{}, err
	}
	return FromSource(recipeld.JSONString(s), opts...)
}

// FromJSONReader decodes one JSON-LD document read from r. When MaxBytes is
// set the input is read up front so the cap holds for every driver.
func FromJSONReader(r io.Reader, opts ...recipeld.ParseOpt) (SchemaEntry, error) {
	if opt := lastOpt(opts); opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			iss := recipeld.IssueAt(recipeld.Root(), recipeld.CodeParseError, err.Error())
			iss.Cause = err
			return SchemaEntry{}, recipeld.Issues{iss}
		}
		return FromJSONBytes(data, opts...)
	}
	return FromSource(recipeld.JSONReader(r), opts...)
}

// FromJSONValue resolves an already-parsed generic JSON value, such as the
// result of json.Unmarshal into an any.
func FromJSONValue(v any) (SchemaEntry, error) { return DecodeSchemaEntry(v) }

// FromSource decodes one document from any recipeld.Source, for example the
// YAML source.
func FromSource(src recipeld.Source, opts ...recipeld.ParseOpt) (SchemaEntry, error) {
	v, err := recipeld.DecodeAny(src, opts...)
	if err != nil {
		return SchemaEntry{}, err
	}
	return DecodeSchemaEntry(v)
}

func lastOpt(opts []recipeld.ParseOpt) recipeld.ParseOpt {
	if len(opts) == 0 {
		return recipeld.ParseOpt{}
	}
	return opts[len(opts)-1]
}

func checkSize(n int64, opts []recipeld.ParseOpt) error {
	if max := lastOpt(opts).MaxBytes; max > 0 && n > max {
		return recipeld.SingleIssue(recipeld.Root(), recipeld.CodeTruncated, "max bytes exceeded")
	}
	return nil
}
