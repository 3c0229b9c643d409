package deinflect

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Class is a bitset of morphological categories. The class of a candidate
// gates which rules may be applied to it next.
type Class uint16

const (
	V1   Class = 1 << iota // ichidan verb
	V5                     // godan verb
	VS                     // suru verb
	VK                     // kuru verb
	VZ                     // zuru verb
	AdjI                   // i-adjective
	Iru                    // te-form that may continue with いる/おる
	Masu                   // polite ます form
)

// Reason is a bitset of grammatical transformations. Every rule group
// contributes exactly one bit; a candidate accumulates the bits of all rules
// on its path from the original word.
type Reason uint64

const (
	Ba Reason = 1 << iota
	Chau
	Chimau
	Shimau
	Nasai
	Sou
	Sugiru
	Tai
	Tara
	Tari
	Te
	Zu
	Nu
	Adv
	Causative
	Imperative
	ImperativeNegative
	MasuStem
	Negative
	Noun
	Passive
	Past
	Polite
	PoliteNegative
	PolitePastNegative
	PoliteVolitional
	Potential
	PotentialOrPassive
	Volitional
	CausativePassive
	Toku
	ProgressiveOrPerfect
	Ki
	Ge
	E
)

// Rule replaces the input suffix In with Out. It applies to a candidate whose
// class intersects ClassesIn and produces a candidate of class ClassesOut.
type Rule struct {
	In         string
	Out        string
	ClassesIn  Class
	ClassesOut Class
}

// RuleGroup is a list of rules sharing one reason.
type RuleGroup struct {
	Reason Reason
	Rules  []Rule
}

func r(in, out string, classesIn, classesOut Class) Rule {
	return Rule{In: in, Out: out, ClassesIn: classesIn, ClassesOut: classesOut}
}

var classNames = [...]string{"v1", "v5", "vs", "vk", "vz", "adj-i", "iru", "masu"}

var reasonNames = [...]string{
	"-ba", "-chau", "-chimau", "-shimau", "-nasai", "-sou", "-sugiru", "-tai", "-tara", "-tari",
	"-te", "-zu", "-nu", "adv", "causative", "imperative", "imperative negative", "masu stem",
	"negative", "noun", "passive", "past", "polite", "polite negative", "polite past negative",
	"polite volitional", "potential", "potential or passive", "volitional", "causative passive",
	"-toku", "progressive or perfect", "-ki", "-ge", "-e",
}

// ErrUnknownName is returned when a class or reason name is not recognized.
var ErrUnknownName = errors.New("unknown name")

// Names returns the names of the set bits, lowest bit first.
func (c Class) Names() []string {
	names := make([]string, 0, bits.OnesCount16(uint16(c)))
	for i, name := range classNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

func (c Class) String() string {
	return strings.Join(c.Names(), "|")
}

// ParseClass returns the class bit with the given name, e.g. "adj-i".
func ParseClass(name string) (Class, error) {
	for i, n := range classNames {
		if n == name {
			return 1 << i, nil
		}
	}
	return 0, fmt.Errorf("class %q: %w", name, ErrUnknownName)
}

// Names returns the names of the set bits, lowest bit first.
func (r Reason) Names() []string {
	names := make([]string, 0, bits.OnesCount64(uint64(r)))
	for i, name := range reasonNames {
		if r&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

func (r Reason) String() string {
	return strings.Join(r.Names(), ", ")
}

// ParseReason returns the reason bit with the given name, e.g. "-te" or "polite".
func ParseReason(name string) (Reason, error) {
	for i, n := range reasonNames {
		if n == name {
			return 1 << i, nil
		}
	}
	return 0, fmt.Errorf("reason %q: %w", name, ErrUnknownName)
}
