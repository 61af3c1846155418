package matching

import (
	"fmt"
	"strings"
)

type RequirementKind string

const (
	RequirementCert   RequirementKind = "cert"
	RequirementDomain RequirementKind = "domain"
)

// Requirement is a job-level hard constraint parsed from a tagged flag
// such as "cert:ISO9001" or "domain:fintech". Candidates missing any
// requirement are excluded before scoring and never re-admitted.
type Requirement struct {
	Kind  RequirementKind
	Value string
}

// ParseRequirement parses one "kind:value" flag. Flags are parsed once
// at the storage boundary; scoring code only ever sees typed values.
func ParseRequirement(flag string) (Requirement, error) {
	kind, value, ok := strings.Cut(flag, ":")
	if !ok {
		return Requirement{}, fmt.Errorf("malformed requirement flag %q: missing separator", flag)
	}
	kind = strings.TrimSpace(kind)
	value = strings.TrimSpace(value)
	if value == "" {
		return Requirement{}, fmt.Errorf("malformed requirement flag %q: empty value", flag)
	}
	switch RequirementKind(kind) {
	case RequirementCert, RequirementDomain:
		return Requirement{Kind: RequirementKind(kind), Value: value}, nil
	default:
		return Requirement{}, fmt.Errorf("malformed requirement flag %q: unknown kind %q", flag, kind)
	}
}

func ParseRequirements(flags []string) ([]Requirement, error) {
	out := make([]Requirement, 0, len(flags))
	for _, f := range flags {
		r, err := ParseRequirement(f)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Satisfies reports whether the profile meets a single requirement.
// Both matching stages share this predicate.
func (r Requirement) Satisfies(p FreelancerProfile) bool {
	switch r.Kind {
	case RequirementCert:
		for _, c := range p.Certifications {
			if c == r.Value {
				return true
			}
		}
		return false
	case RequirementDomain:
		for _, d := range p.Experience {
			if d.Domain == r.Value {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// SatisfiesAll reports whether the profile meets every mandatory
// requirement on the job.
func SatisfiesAll(p FreelancerProfile, reqs []Requirement) bool {
	for _, r := range reqs {
		if !r.Satisfies(p) {
			return false
		}
	}
	return true
}
