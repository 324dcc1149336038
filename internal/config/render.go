package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# gyani configuration (TOML)\n")

	topLevel, sections, order := groupOptions(GetConfigOptions())
	for _, o := range topLevel {
		b.WriteString(strings.Join(optionLines(o.Key, o.Default, o.Comment), "\n") + "\n")
	}
	for _, section := range order {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			b.WriteString(strings.Join(optionLines(o.Key, o.Default, o.Comment), "\n") + "\n")
		}
	}
	return b.String()
}

// ValidateTOML reports whether s parses as TOML.
func ValidateTOML(s string) error {
	var m map[string]any
	if _, err := toml.Decode(s, &m); err != nil {
		return fmt.Errorf("invalid toml: %w", err)
	}
	return nil
}

// UpdateTOML merges defaults into an existing TOML string and comments out
// unknown keys. Missing keys are added to the section they belong to.
func UpdateTOML(existing string) (string, bool) {
	opts := GetConfigOptions()
	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	type section struct {
		name  string
		lines []string
	}
	doc := []*section{{}}
	byName := map[string]*section{"": doc[0]}
	existingKeys := make(map[string]bool)
	changed := false

	for _, line := range strings.Split(existing, "\n") {
		cur := doc[len(doc)-1]
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";") {
			cur.lines = append(cur.lines, line)
			continue
		}
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
			next := &section{name: strings.TrimSpace(trim[1 : len(trim)-1]), lines: []string{line}}
			doc = append(doc, next)
			if _, ok := byName[next.name]; !ok {
				byName[next.name] = next
			}
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			cur.lines = append(cur.lines, line)
			continue
		}
		fullKey := key
		if cur.name != "" {
			fullKey = cur.name + "." + key
		}
		existingKeys[fullKey] = true
		if !known[fullKey] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			cur.lines = append(cur.lines,
				indent+"# OUTDATED: option removed from config schema",
				indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		cur.lines = append(cur.lines, line)
	}

	missing := make([]ConfigOption, 0)
	for _, o := range opts {
		if !existingKeys[o.Key] {
			missing = append(missing, o)
		}
	}
	topLevel, sections, order := groupOptions(missing)
	add := func(sec *section, group []ConfigOption) {
		for len(sec.lines) > 0 && strings.TrimSpace(sec.lines[len(sec.lines)-1]) == "" {
			sec.lines = sec.lines[:len(sec.lines)-1]
		}
		sec.lines = append(sec.lines, "", "# Added by config update")
		for _, o := range group {
			sec.lines = append(sec.lines, optionLines(o.Key, o.Default, o.Comment)...)
		}
		changed = true
	}
	if len(topLevel) > 0 {
		add(doc[0], topLevel)
	}
	for _, name := range order {
		sec, ok := byName[name]
		if !ok {
			sec = &section{name: name, lines: []string{"[" + name + "]"}}
			doc = append(doc, sec)
			byName[name] = sec
			sec.lines = append(sec.lines, "# Added by config update")
			for _, o := range sections[name] {
				sec.lines = append(sec.lines, optionLines(o.Key, o.Default, o.Comment)...)
			}
			changed = true
			continue
		}
		add(sec, sections[name])
	}

	out := make([]string, 0)
	for _, sec := range doc {
		out = append(out, sec.lines...)
	}
	return strings.Join(out, "\n"), changed
}

// groupOptions splits dotted keys into sections, keeping first-seen order.
// Options in a section have the section prefix removed from Key.
func groupOptions(opts []ConfigOption) ([]ConfigOption, map[string][]ConfigOption, []string) {
	topLevel := make([]ConfigOption, 0, len(opts))
	sections := make(map[string][]ConfigOption)
	order := make([]string, 0)
	for _, o := range opts {
		section, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			topLevel = append(topLevel, o)
			continue
		}
		if _, seen := sections[section]; !seen {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return topLevel, sections, order
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

// optionLines renders one option with its comment, followed by a blank line.
func optionLines(key string, value any, comment string) []string {
	var lines []string
	if comment != "" {
		lines = append(lines, "# "+comment)
	}
	switch v := value.(type) {
	case string:
		lines = append(lines, fmt.Sprintf("%s = %s", key, strconv.Quote(v)))
	default:
		lines = append(lines, fmt.Sprintf("%s = %v", key, v))
	}
	return append(lines, "")
}
