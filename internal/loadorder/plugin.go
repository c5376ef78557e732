package loadorder

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"item-tagger/internal/record"
)

// PluginFile is the YAML document of a plugin.
type PluginFile struct {
	Name    string      `yaml:"name"`
	Masters []string    `yaml:"masters,omitempty"`
	Records []RecordDoc `yaml:"records"`
}

// RecordDoc is the YAML form of a record. Links are form key strings;
// ids without a plugin part belong to the declaring plugin.
type RecordDoc struct {
	Kind          string         `yaml:"kind"`
	FormKey       string         `yaml:"form_key"`
	EditorID      string         `yaml:"editor_id,omitempty"`
	Name          *string        `yaml:"name,omitempty"`
	Keywords      []string       `yaml:"keywords,omitempty"`
	Flags         []string       `yaml:"flags,omitempty"`
	Effects       []string       `yaml:"effects,omitempty"`
	HolotapeType  string         `yaml:"holotape_type,omitempty"`
	Components    []ComponentDoc `yaml:"components,omitempty"`
	CreatedObject string         `yaml:"created_object,omitempty"`
	LooseMod      string         `yaml:"loose_mod,omitempty"`
}

// ComponentDoc is one (component, count) entry.
type ComponentDoc struct {
	Component string `yaml:"component"`
	Count     int    `yaml:"count"`
}

// Plugin is a parsed plugin: its records in file order.
type Plugin struct {
	Name    string
	Masters []string
	Records []*record.Record
}

// LoadPlugin reads and parses a plugin file.
func LoadPlugin(path string) (*Plugin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin file %s: %w", path, err)
	}

	p, err := ParsePlugin(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// ParsePlugin parses YAML plugin data.
func ParsePlugin(data []byte) (*Plugin, error) {
	var pf PluginFile

	err := yaml.Unmarshal(data, &pf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plugin YAML: %w", err)
	}

	return pf.Plugin()
}

// Plugin converts the document into records, validating kinds, form keys
// and flags.
func (pf *PluginFile) Plugin() (*Plugin, error) {
	name := strings.TrimSpace(pf.Name)
	if name == "" {
		return nil, fmt.Errorf("plugin has no name")
	}

	if _, err := record.ParseFormKey("0:" + name); err != nil {
		return nil, fmt.Errorf("invalid plugin name %q", name)
	}

	p := &Plugin{
		Name:    name,
		Masters: slices.Clone(pf.Masters),
		Records: make([]*record.Record, 0, len(pf.Records)),
	}

	seen := make(map[record.FormKey]int, len(pf.Records))

	for i := range pf.Records {
		rec, err := pf.Records[i].record(name)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: record #%d: %w", name, i, err)
		}

		if prev, ok := seen[rec.Key]; ok {
			return nil, fmt.Errorf("plugin %s: record #%d: duplicate form key %s (first at #%d)", name, i, rec.Key, prev)
		}

		seen[rec.Key] = i
		p.Records = append(p.Records, rec)
	}

	return p, nil
}

func (d *RecordDoc) record(plugin string) (*record.Record, error) {
	kind, err := record.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}

	key, err := parseLink(d.FormKey, plugin)
	if err != nil {
		return nil, err
	}

	if key.IsNull() {
		return nil, fmt.Errorf("missing form_key")
	}

	flags, err := record.ParseFlags(d.Flags)
	if err != nil {
		return nil, err
	}

	holotapeType, err := record.ParseHolotapeType(d.HolotapeType)
	if err != nil {
		return nil, err
	}

	rec := &record.Record{
		Kind:         kind,
		Key:          key,
		EditorID:     d.EditorID,
		Flags:        flags,
		HolotapeType: holotapeType,
	}

	if d.Name != nil {
		rec.SetName(*d.Name)
	}

	if rec.Keywords, err = parseLinks(d.Keywords, plugin); err != nil {
		return nil, fmt.Errorf("keywords: %w", err)
	}

	if rec.Effects, err = parseLinks(d.Effects, plugin); err != nil {
		return nil, fmt.Errorf("effects: %w", err)
	}

	for _, cd := range d.Components {
		link, err := parseLink(cd.Component, plugin)
		if err != nil {
			return nil, fmt.Errorf("components: %w", err)
		}

		rec.Components = append(rec.Components, record.ComponentCount{Component: link, Count: cd.Count})
	}

	if rec.CreatedObject, err = parseLink(d.CreatedObject, plugin); err != nil {
		return nil, fmt.Errorf("created_object: %w", err)
	}

	if rec.LooseMod, err = parseLink(d.LooseMod, plugin); err != nil {
		return nil, fmt.Errorf("loose_mod: %w", err)
	}

	return rec, nil
}

// parseLink accepts "id:Plugin.esm" or a bare id relative to plugin.
func parseLink(s, plugin string) (record.FormKey, error) {
	s = strings.TrimSpace(s)
	if s != "" && !strings.Contains(s, ":") {
		s += ":" + plugin
	}

	return record.ParseFormKey(s)
}

func parseLinks(ss []string, plugin string) ([]record.FormKey, error) {
	if len(ss) == 0 {
		return nil, nil
	}

	links := make([]record.FormKey, 0, len(ss))
	for _, s := range ss {
		link, err := parseLink(s, plugin)
		if err != nil {
			return nil, err
		}

		links = append(links, link)
	}

	return links, nil
}

// Document converts the plugin back to its YAML form.
func (p *Plugin) Document() *PluginFile {
	pf := &PluginFile{
		Name:    p.Name,
		Masters: slices.Clone(p.Masters),
		Records: make([]RecordDoc, 0, len(p.Records)),
	}

	for _, rec := range p.Records {
		pf.Records = append(pf.Records, documentOf(rec))
	}

	return pf
}

func documentOf(rec *record.Record) RecordDoc {
	d := RecordDoc{
		Kind:          rec.Kind.String(),
		FormKey:       string(rec.Key),
		EditorID:      rec.EditorID,
		Flags:         rec.Flags.Names(),
		CreatedObject: string(rec.CreatedObject),
		LooseMod:      string(rec.LooseMod),
	}

	if rec.Name != nil {
		name := *rec.Name
		d.Name = &name
	}

	if rec.Kind == record.KindHolotape {
		d.HolotapeType = rec.HolotapeType.String()
	}

	for _, kw := range rec.Keywords {
		d.Keywords = append(d.Keywords, string(kw))
	}

	for _, e := range rec.Effects {
		d.Effects = append(d.Effects, string(e))
	}

	for _, c := range rec.Components {
		d.Components = append(d.Components, ComponentDoc{Component: string(c.Component), Count: c.Count})
	}

	return d
}

// Marshal serializes the plugin to YAML.
func (p *Plugin) Marshal() ([]byte, error) {
	return yaml.Marshal(p.Document())
}

// WriteFile writes the plugin to path.
func (p *Plugin) WriteFile(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal plugin %s: %w", p.Name, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plugin file %s: %w", path, err)
	}

	return nil
}
