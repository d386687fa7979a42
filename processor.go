package serhex

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the hex tag and the wire-name tags with sentinel
	sentinel.Tag("hex")
	sentinel.Tag("json")
	sentinel.Tag("yaml")
	sentinel.Tag("msgpack")
}

// Processor provides tag-driven hex serialization for whole structs, the
// struct-tag analog of the field wrapper types. Fields tagged
// `hex:"<mode>[,prefix][,cap]"` are rendered as hex strings on Marshal and
// parsed back on Unmarshal; everything else passes through the wire codec
// untouched.
//
// Supported field types: uint8/16/32/64 (any mode), [N]byte arrays with N
// 1 through 64 (strict only), []byte slices (strict only, sequence
// framing), and pointers to any of those for optional fields. Hex tags are
// scanned on top-level fields.
//
// Processors are stateless after construction and safe for concurrent use.
type Processor[T any] struct {
	codec    WireCodec
	plan     []fieldPlan
	typeName string
}

// tagConfig is a runtime rendering of the configuration flags, parsed from
// a hex struct tag instead of selected by type parameter.
type tagConfig struct {
	strict  bool
	prefix  bool
	capital bool
}

// planKind selects the per-field codec path.
type planKind int

const (
	planUint planKind = iota
	planArray
	planSeq
)

// fieldPlan describes how to convert a single tagged field.
type fieldPlan struct {
	index       []int  // reflect.Value.FieldByIndex access path
	name        string // Go field name for error messages
	jsonName    string // wire name under the json codec
	yamlName    string // wire name under the yaml codec
	msgpackName string // wire name under the msgpack codec
	cfg         tagConfig
	kind        planKind
	width       int  // byte width: integer size or array length
	optional    bool // pointer field; nil serializes as null
}

// NewProcessor creates a Processor for struct type T using the given wire
// codec. The hex tag plan is built and validated here, so malformed tags
// and unsupported field types surface at startup rather than on first use.
func NewProcessor[T any](codec WireCodec) (*Processor[T], error) {
	plan, err := getOrBuildPlan[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		plan:     plan.fields,
		typeName: plan.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plan.typeName, len(plan.fields))
	return p, nil
}

// Marshal encodes v through the wire codec with tagged fields rendered as
// hex strings.
func (p *Processor[T]) Marshal(ctx context.Context, v T) ([]byte, error) {
	start := time.Now()
	emitMarshalStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitMarshalComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.plan), retErr)
	}()

	raw, err := p.codec.Marshal(v)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	var m map[string]any
	if err := p.codec.Unmarshal(raw, &m); err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	rv := reflect.ValueOf(v)
	for i := range p.plan {
		f := &p.plan[i]
		fv := rv.FieldByIndex(f.index)
		name := f.wireName(p.codec.ContentType())
		if f.optional {
			if fv.IsNil() {
				m[name] = nil
				continue
			}
			fv = fv.Elem()
		}
		m[name] = f.encode(fv)
	}

	retData, err = p.codec.Marshal(m)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}
	return retData, nil
}

// Unmarshal decodes wire data into a T, parsing tagged fields from their
// hex string form.
func (p *Processor[T]) Unmarshal(ctx context.Context, data []byte) (T, error) {
	start := time.Now()
	emitUnmarshalStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitUnmarshalComplete(ctx, p.codec.ContentType(), p.typeName,
			len(data), time.Since(start), len(p.plan), retErr)
	}()

	var zero T
	var m map[string]any
	if err := p.codec.Unmarshal(data, &m); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return zero, retErr
	}

	// Pull tagged fields out of the wire map so the codec does not try to
	// decode hex strings into raw integer or byte fields.
	type pending struct {
		f    *fieldPlan
		text string
		null bool
	}
	pend := make([]pending, 0, len(p.plan))
	for i := range p.plan {
		f := &p.plan[i]
		name := f.wireName(p.codec.ContentType())
		raw, ok := m[name]
		delete(m, name)
		if !ok || raw == nil {
			pend = append(pend, pending{f: f, null: true})
			continue
		}
		text, ok := raw.(string)
		if !ok {
			retErr = newTagError(f.name, fmt.Sprintf("expected hex string, got %T", raw))
			return zero, retErr
		}
		pend = append(pend, pending{f: f, text: text})
	}

	rest, err := p.codec.Marshal(m)
	if err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return zero, retErr
	}

	var out T
	if err := p.codec.Unmarshal(rest, &out); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return zero, retErr
	}

	rv := reflect.ValueOf(&out).Elem()
	for _, pd := range pend {
		fv := rv.FieldByIndex(pd.f.index)
		if pd.null {
			// Absent or null: optional fields stay nil, required fields
			// keep their zero value.
			continue
		}
		if pd.f.optional {
			fv.Set(reflect.New(fv.Type().Elem()))
			fv = fv.Elem()
		}
		if err := pd.f.decode(fv, pd.text); err != nil {
			retErr = err
			return zero, retErr
		}
	}
	return out, nil
}

// ContentType returns the MIME type of the underlying wire codec.
func (p *Processor[T]) ContentType() string {
	return p.codec.ContentType()
}

// wireName returns the map key this field uses under the given content
// type: the matching name tag if present, otherwise the codec's default
// naming (yaml lowercases untagged field names).
func (f *fieldPlan) wireName(contentType string) string {
	switch contentType {
	case "application/yaml":
		return f.yamlName
	case "application/msgpack":
		return f.msgpackName
	default:
		return f.jsonName
	}
}

// encode renders one dereferenced field value as hex text.
func (f *fieldPlan) encode(fv reflect.Value) string {
	table := lowerDigits
	if f.cfg.capital {
		table = upperDigits
	}
	dst := make([]byte, 0, f.width*2+2)
	if f.cfg.prefix {
		dst = append(dst, '0', 'x')
	}
	switch f.kind {
	case planUint:
		if f.cfg.strict {
			dst = appendStrict(dst, fv.Uint(), f.width*2, table)
		} else {
			dst = appendCompact(dst, fv.Uint(), f.width*2, table)
		}
	case planArray:
		b := make([]byte, fv.Len())
		reflect.Copy(reflect.ValueOf(b), fv)
		for _, x := range b {
			dst = append(dst, table[x>>4], table[x&0xf])
		}
	case planSeq:
		for _, x := range fv.Bytes() {
			dst = append(dst, table[x>>4], table[x&0xf])
		}
	}
	return string(dst)
}

// decode parses hex text into one dereferenced, settable field value.
// Decoding is case-insensitive and prefix-tolerant for every
// configuration, so only the strict flag matters here.
func (f *fieldPlan) decode(fv reflect.Value, text string) error {
	src := stripPrefix([]byte(text))
	switch f.kind {
	case planUint:
		width := f.width * 2
		if f.cfg.strict {
			if len(src) != width {
				return newSizeError(width, len(src))
			}
		} else if len(src) == 0 || len(src) > width {
			return newSizeError(width, len(src))
		}
		v, err := parseNibbles(src)
		if err != nil {
			return err
		}
		fv.SetUint(v)
	case planArray:
		codec := BytesCodec[Strict]{n: f.width}
		out, err := codec.DecodeHex(src)
		if err != nil {
			return err
		}
		reflect.Copy(fv, reflect.ValueOf(out))
	case planSeq:
		out, err := SeqCodec[uint8, Strict]{}.DecodeHex(src)
		if err != nil {
			return err
		}
		fv.SetBytes(out)
	}
	return nil
}

// parseHexTag parses a hex struct tag value. The first token names the
// mode (strict or compact); prefix and cap follow in any order.
func parseHexTag(val string) (tagConfig, error) {
	var cfg tagConfig
	toks := strings.Split(val, ",")
	switch strings.TrimSpace(toks[0]) {
	case "strict":
		cfg.strict = true
	case "compact":
	default:
		return cfg, fmt.Errorf("mode must be strict or compact, got %q", toks[0])
	}
	for _, tok := range toks[1:] {
		switch strings.TrimSpace(tok) {
		case "prefix":
			cfg.prefix = true
		case "cap":
			cfg.capital = true
		default:
			return cfg, fmt.Errorf("unknown option %q", tok)
		}
	}
	return cfg, nil
}

// typePlan holds the scanned hex tag plan for one struct type.
type typePlan struct {
	typeName string
	fields   []fieldPlan
}

// buildPlan creates the field plan for type T by scanning struct tags.
func buildPlan[T any]() (*typePlan, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, newTagError("", fmt.Sprintf("%s is not a struct type", rt))
	}

	meta := sentinel.Scan[T]()
	plan := &typePlan{typeName: meta.TypeName}

	for _, field := range meta.Fields {
		val, ok := field.Tags["hex"]
		if !ok {
			continue
		}
		if len(field.Index) != 1 {
			// Hex tags apply to top-level fields only.
			continue
		}

		cfg, err := parseHexTag(val)
		if err != nil {
			return nil, newTagError(field.Name, err.Error())
		}

		ft := field.ReflectType
		optional := false
		if ft.Kind() == reflect.Pointer {
			optional = true
			ft = ft.Elem()
		}

		fp := fieldPlan{
			index:       field.Index,
			name:        field.Name,
			jsonName:    wireTagName(field.Tags, "json", field.Name),
			yamlName:    wireTagName(field.Tags, "yaml", strings.ToLower(field.Name)),
			msgpackName: wireTagName(field.Tags, "msgpack", field.Name),
			cfg:         cfg,
			optional:    optional,
		}

		switch ft.Kind() {
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fp.kind = planUint
			fp.width = int(ft.Size())
		case reflect.Array:
			if ft.Elem().Kind() != reflect.Uint8 {
				return nil, newTagError(field.Name, fmt.Sprintf("unsupported array element type %s", ft.Elem()))
			}
			if ft.Len() < minBytesLen || ft.Len() > maxBytesLen {
				return nil, newTagError(field.Name, fmt.Sprintf("array length %d out of range [%d, %d]", ft.Len(), minBytesLen, maxBytesLen))
			}
			if !cfg.strict {
				return nil, newTagError(field.Name, "byte arrays require strict mode")
			}
			fp.kind = planArray
			fp.width = ft.Len()
		case reflect.Slice:
			if ft.Elem().Kind() != reflect.Uint8 {
				return nil, newTagError(field.Name, fmt.Sprintf("unsupported slice element type %s", ft.Elem()))
			}
			if !cfg.strict {
				return nil, newTagError(field.Name, "byte sequences require strict mode")
			}
			fp.kind = planSeq
			fp.width = 1
		default:
			return nil, newTagError(field.Name, fmt.Sprintf("unsupported field type %s", field.ReflectType))
		}

		plan.fields = append(plan.fields, fp)
	}

	return plan, nil
}

// wireTagName extracts a wire name from a name tag, dropping options like
// ",omitempty".
func wireTagName(tags map[string]string, key, fallback string) string {
	val, ok := tags[key]
	if !ok {
		return fallback
	}
	if i := strings.IndexByte(val, ','); i >= 0 {
		val = val[:i]
	}
	if val == "" {
		return fallback
	}
	return val
}
