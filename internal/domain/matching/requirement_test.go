package matching

import "testing"

func TestParseRequirement(t *testing.T) {
	r, err := ParseRequirement("cert:ISO9001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Kind != RequirementCert || r.Value != "ISO9001" {
		t.Fatalf("unexpected requirement: %+v", r)
	}

	r, err = ParseRequirement("domain:fintech")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Kind != RequirementDomain || r.Value != "fintech" {
		t.Fatalf("unexpected requirement: %+v", r)
	}
}

func TestParseRequirement_Malformed(t *testing.T) {
	for _, flag := range []string{"", "cert", "cert:", "badge:gold", ":fintech"} {
		if _, err := ParseRequirement(flag); err == nil {
			t.Fatalf("expected error for flag %q", flag)
		}
	}
}

func TestRequirement_Satisfies(t *testing.T) {
	p := FreelancerProfile{
		Certifications: []string{"ISO9001"},
		Experience:     []DomainExperience{{Domain: "fintech", Years: 3}},
	}

	if !(Requirement{Kind: RequirementCert, Value: "ISO9001"}).Satisfies(p) {
		t.Fatalf("expected held cert to satisfy")
	}
	if (Requirement{Kind: RequirementCert, Value: "PMP"}).Satisfies(p) {
		t.Fatalf("expected missing cert to fail")
	}
	if !(Requirement{Kind: RequirementDomain, Value: "fintech"}).Satisfies(p) {
		t.Fatalf("expected domain record to satisfy")
	}
	if (Requirement{Kind: RequirementDomain, Value: "healthcare"}).Satisfies(p) {
		t.Fatalf("expected missing domain to fail")
	}
}

func TestSatisfiesAll(t *testing.T) {
	p := FreelancerProfile{
		Certifications: []string{"ISO9001"},
		Experience:     []DomainExperience{{Domain: "fintech", Years: 3}},
	}
	reqs := []Requirement{
		{Kind: RequirementCert, Value: "ISO9001"},
		{Kind: RequirementDomain, Value: "fintech"},
	}
	if !SatisfiesAll(p, reqs) {
		t.Fatalf("expected all satisfied")
	}
	reqs = append(reqs, Requirement{Kind: RequirementCert, Value: "PMP"})
	if SatisfiesAll(p, reqs) {
		t.Fatalf("expected one missing requirement to fail all")
	}
}
