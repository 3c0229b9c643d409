// Package ruleset reads and writes deinflection rule tables as YAML.
//
// A table is a list of groups, each with one reason and its rules:
//
//	groups:
//	  - reason: past
//	    rules:
//	      - {in: かった, out: い, rules_in: [], rules_out: [adj-i]}
//	      - {in: た, out: る, rules_in: [], rules_out: [v1]}
//
// Reason and class names are those of deinflect.ParseReason and
// deinflect.ParseClass. Loading fails on the first unknown name so that a
// table is either used whole or not at all.
package ruleset

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"jpdeinflect/deinflect"
)

type fileRule struct {
	In       string   `yaml:"in"`
	Out      string   `yaml:"out"`
	RulesIn  []string `yaml:"rules_in,flow"`
	RulesOut []string `yaml:"rules_out,flow"`
}

type fileGroup struct {
	Reason string     `yaml:"reason"`
	Rules  []fileRule `yaml:"rules"`
}

type file struct {
	Groups []fileGroup `yaml:"groups"`
}

// LoadFile reads a rule table from path.
func LoadFile(path string) ([]deinflect.RuleGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	groups, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

// Load decodes a rule table. Unknown fields are rejected.
func Load(r io.Reader) ([]deinflect.RuleGroup, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode rule table: %w", err)
	}

	groups := make([]deinflect.RuleGroup, 0, len(f.Groups))
	for gi, fg := range f.Groups {
		reason, err := deinflect.ParseReason(fg.Reason)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", gi, err)
		}
		g := deinflect.RuleGroup{Reason: reason, Rules: make([]deinflect.Rule, 0, len(fg.Rules))}
		for ri, fr := range fg.Rules {
			in, err := parseClasses(fr.RulesIn)
			if err != nil {
				return nil, fmt.Errorf("group %d (%s) rule %d: rules_in: %w", gi, fg.Reason, ri, err)
			}
			out, err := parseClasses(fr.RulesOut)
			if err != nil {
				return nil, fmt.Errorf("group %d (%s) rule %d: rules_out: %w", gi, fg.Reason, ri, err)
			}
			g.Rules = append(g.Rules, deinflect.Rule{In: fr.In, Out: fr.Out, ClassesIn: in, ClassesOut: out})
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// Index loads a rule table and builds an index over it.
func Index(r io.Reader) (*deinflect.Index, error) {
	groups, err := Load(r)
	if err != nil {
		return nil, err
	}
	return deinflect.NewIndex(groups)
}

// Encode writes groups in the format read by Load.
func Encode(w io.Writer, groups []deinflect.RuleGroup) error {
	f := file{Groups: make([]fileGroup, 0, len(groups))}
	for _, g := range groups {
		fg := fileGroup{Reason: g.Reason.String(), Rules: make([]fileRule, 0, len(g.Rules))}
		for _, rule := range g.Rules {
			fg.Rules = append(fg.Rules, fileRule{
				In:       rule.In,
				Out:      rule.Out,
				RulesIn:  rule.ClassesIn.Names(),
				RulesOut: rule.ClassesOut.Names(),
			})
		}
		f.Groups = append(f.Groups, fg)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}

func parseClasses(names []string) (deinflect.Class, error) {
	var c deinflect.Class
	for _, name := range names {
		bit, err := deinflect.ParseClass(name)
		if err != nil {
			return 0, err
		}
		c |= bit
	}
	return c, nil
}
