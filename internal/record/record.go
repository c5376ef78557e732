package record

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"item-tagger/internal/common"
)

// FormKey is the identity of a record: a local id within its originating
// plugin, written as "00059B1E:Fallout4.esm"-style text. The zero value is
// the null link.
type FormKey string

// NullFormKey is the empty link.
const NullFormKey FormKey = ""

var pluginExtensions = []string{".esm", ".esp", ".esl"}

// ParseFormKey validates and normalizes a textual form key. The id is
// rewritten as six upper-case hex digits.
func ParseFormKey(s string) (FormKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullFormKey, nil
	}

	id, plugin, ok := strings.Cut(s, ":")
	if !ok {
		return NullFormKey, fmt.Errorf("form key %q: missing ':' separator", s)
	}

	n, err := strconv.ParseUint(id, 16, 32)
	if err != nil || len(id) == 0 || len(id) > 8 {
		return NullFormKey, fmt.Errorf("form key %q: invalid id %q", s, id)
	}

	if !common.IsInRange(0, n, 0xFFFFFF) {
		return NullFormKey, fmt.Errorf("form key %q: id exceeds 24 bits", s)
	}

	ext := strings.ToLower(pathExt(plugin))
	if !slices.Contains(pluginExtensions, ext) || len(plugin) == len(ext) {
		return NullFormKey, fmt.Errorf("form key %q: invalid plugin name %q", s, plugin)
	}

	return FormKey(fmt.Sprintf("%06X:%s", n, plugin)), nil
}

// MustFormKey is ParseFormKey for literals; it panics on malformed input.
func MustFormKey(s string) FormKey {
	fk, err := ParseFormKey(s)
	if err != nil {
		panic(err)
	}

	return fk
}

// IsNull reports whether the key is the null link.
func (fk FormKey) IsNull() bool {
	return fk == NullFormKey
}

// Plugin returns the name of the plugin the key originates from.
func (fk FormKey) Plugin() string {
	_, plugin, _ := strings.Cut(string(fk), ":")
	return plugin
}

func (fk FormKey) String() string {
	if fk.IsNull() {
		return "null"
	}

	return string(fk)
}

func pathExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}

	return ""
}

// ComponentCount is a (component link, count) pair. Recipes use it for
// their inputs and misc items for their scrap yield.
type ComponentCount struct {
	Component FormKey
	Count     int
}

// Record is one game record. Kind decides which fields are meaningful:
//
//   - Effects: ingestibles
//   - HolotapeType: holotapes
//   - Components: misc items (scrap yield) and constructible objects (inputs)
//   - CreatedObject: constructible objects
//   - LooseMod: object modifications
type Record struct {
	Kind     Kind
	Key      FormKey
	EditorID string

	// Name is nil when the record has no display name.
	Name *string

	Keywords     []FormKey
	Flags        Flag
	Effects      []FormKey
	HolotapeType HolotapeType
	Components   []ComponentCount

	CreatedObject FormKey
	LooseMod      FormKey
}

// DisplayName returns the display name, or "" if the record has none.
func (r *Record) DisplayName() string {
	if r == nil || r.Name == nil {
		return ""
	}

	return *r.Name
}

// SetName sets the display name.
func (r *Record) SetName(name string) {
	r.Name = &name
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	c := *r
	if r.Name != nil {
		c.SetName(*r.Name)
	}

	c.Keywords = slices.Clone(r.Keywords)
	c.Effects = slices.Clone(r.Effects)
	c.Components = slices.Clone(r.Components)

	return &c
}

// HasComponents reports whether the record lists at least one component.
func (r *Record) HasComponents() bool {
	return len(r.Components) > 0
}

// String identifies the record in logs and errors.
func (r *Record) String() string {
	if r == nil {
		return "<nil record>"
	}

	if r.EditorID != "" {
		return fmt.Sprintf("%s %s (%s)", r.Kind, r.Key, r.EditorID)
	}

	return fmt.Sprintf("%s %s", r.Kind, r.Key)
}
