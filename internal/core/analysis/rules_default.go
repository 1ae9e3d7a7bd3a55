package analysis

import "github.com/kirillkom/contract-term-analyzer/internal/core/domain"

// DefaultRuleSet returns the built-in heuristic tables. Deployments can
// override any section with a YAML rules file (see LoadRuleSet).
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Domains:      defaultDomains(),
		LegalTerms:   defaultLegalTerms(),
		Critical:     defaultCritical(),
		Obligations:  defaultObligations(),
		Numeric:      defaultNumeric(),
		Categories:   defaultCategories(),
		Importance:   defaultImportance(),
		Weights:      ComponentWeights{LegalTerm: 0.40, Obligation: 0.25, Numeric: 0.20, Semantic: 0.15},
		Thresholds:   Thresholds{Match: 90, PartialMatch: 70, ContextMatch: 0.5, RiskHigh: 70, RiskMedium: 40},
		RiskPoints:   defaultRiskPoints(),
		ContextWords: 5,
	}
}

func defaultRiskPoints() RiskPoints {
	return RiskPoints{
		MissingCritical:    30,
		ModifiedCritical:   20,
		RemovedLegalTerm:   10,
		ModifiedLegalTerm:  8,
		AddedLegalTerm:     5,
		NumericHigh:        15,
		NumericMedium:      10,
		NumericLow:         5,
		RemovedObligation:  12,
		ModifiedObligation: 8,
		AddedObligation:    5,
	}
}

func defaultDomains() []DomainRule {
	return []DomainRule{
		{
			Name: "employment",
			Keywords: []string{
				"employee", "employer", "employment", "salary", "wages", "compensation",
				"benefits", "vacation", "leave", "termination of employment", "probation",
				"job title", "position", "duties", "responsibilities", "work hours",
				"overtime", "payroll", "bonus", "severance", "non-compete", "workplace",
			},
			EntityLabels: []string{"POSITION", "SALARY", "BONUS", "DURATION", "BENEFIT"},
			PromptHints: "Focus on employment terms: position and duties, compensation and " +
				"benefits, working hours, leave, probation, termination and post-employment restrictions.",
		},
		{
			Name: "lease",
			Keywords: []string{
				"landlord", "tenant", "lease", "rent", "premises", "property",
				"security deposit", "utilities", "maintenance", "sublease", "eviction",
				"rental", "occupancy", "lessor", "lessee", "square feet", "common areas",
				"renewal", "fixtures",
			},
			EntityLabels: []string{"PROPERTY", "PROPERTY_TYPE", "RENT", "DEPOSIT", "TERM", "AREA"},
			PromptHints: "Focus on lease terms: premises description, rent and deposits, " +
				"term and renewal, maintenance duties, permitted use and eviction conditions.",
		},
		{
			Name: "nda",
			Keywords: []string{
				"confidential", "confidentiality", "non-disclosure", "proprietary",
				"trade secret", "disclosing party", "receiving party", "permitted use",
				"return of materials", "confidential information", "disclosure",
				"non-circumvention", "residuals",
			},
			EntityLabels: []string{"CONFIDENTIAL_INFO", "DURATION", "PARTY"},
			PromptHints: "Focus on confidentiality terms: definition of confidential " +
				"information, permitted disclosures, duration of obligations and return of materials.",
		},
		{
			Name: "sla",
			Keywords: []string{
				"service level", "uptime", "availability", "response time", "resolution time",
				"downtime", "maintenance window", "penalty", "credits", "incident",
				"severity", "escalation", "performance metrics", "monitoring", "outage",
			},
			EntityLabels: []string{"SERVICE_LEVEL", "RESPONSE_TIME", "PENALTY", "TIMELINE"},
			PromptHints: "Focus on service terms: availability targets, response and " +
				"resolution times, penalties or credits, maintenance windows and escalation paths.",
		},
		{
			Name: "vendor",
			Keywords: []string{
				"vendor", "supplier", "purchase order", "deliverables", "delivery",
				"acceptance", "invoice", "payment terms", "warranty", "goods", "services",
				"specifications", "inspection", "quantity", "shipment",
			},
			EntityLabels: []string{"DELIVERABLE", "PAYMENT", "TIMELINE"},
			PromptHints: "Focus on supply terms: deliverables and specifications, " +
				"delivery schedules, acceptance criteria, pricing, invoicing and warranties.",
		},
		{
			Name: "partnership",
			Keywords: []string{
				"partner", "partnership", "joint venture", "capital contribution",
				"profit sharing", "loss allocation", "management rights", "voting",
				"dissolution", "withdrawal", "buyout", "equity", "distribution",
			},
			EntityLabels: []string{"STRUCTURE", "CONTRIBUTION", "PROFIT_LOSS"},
			PromptHints: "Focus on partnership terms: contributions, profit and loss " +
				"allocation, management and voting rights, withdrawal and dissolution.",
		},
	}
}

func defaultLegalTerms() []LegalTermRule {
	return []LegalTermRule{
		{Canonical: "shall not", Variants: []string{"must not", "may not", "is prohibited from", "is not permitted to", "cannot"}},
		{Canonical: "shall", Variants: []string{"must", "will", "is required to", "is obligated to", "agrees to"}},
		{Canonical: "terminate", Variants: []string{"end", "cancel", "discontinue", "dissolve", "conclude"}},
		{Canonical: "execute", Variants: []string{"sign", "complete", "perform", "carry out"}},
		{Canonical: "warrant", Variants: []string{"guarantee", "assure", "promise", "represent"}},
		{Canonical: "indemnify", Variants: []string{"hold harmless", "compensate", "reimburse"}},
		{Canonical: "safeguard", Variants: []string{"protect", "secure", "preserve"}},
		{Canonical: "forthwith", Variants: []string{"immediately", "promptly", "without delay"}},
		{Canonical: "hereinafter", Variants: []string{"referred to as", "known as", "called"}},
		{Canonical: "herein", Variants: []string{"in this agreement", "in this contract", "in this document"}},
		{Canonical: "thereof", Variants: []string{"of that", "of it", "of the same"}},
		{Canonical: "thereto", Variants: []string{"to that", "to it"}},
		{Canonical: "force majeure", Variants: []string{"act of god", "unforeseeable circumstances", "superior force"}},
		{Canonical: "condition precedent", Variants: []string{"prerequisite", "precondition"}},
		{Canonical: "pursuant to", Variants: []string{"according to", "in accordance with", "under"}},
		{Canonical: "notwithstanding", Variants: []string{"despite", "regardless of", "even if"}},
		{Canonical: "amend", Variants: []string{"modify", "change", "alter", "revise"}},
		{Canonical: "waive", Variants: []string{"give up", "relinquish", "forgo", "abandon"}},
		{Canonical: "reasonable", Variants: []string{"fair", "appropriate", "sensible"}},
		{Canonical: "material", Variants: []string{"significant", "substantial", "important"}},
		{Canonical: "electronic signature", Variants: []string{"digital signature", "e-signature"}},
	}
}

func defaultCritical() []CriticalRule {
	return []CriticalRule{
		{
			Type: domain.CriticalPayment, Importance: domain.ImportanceHigh, Category: domain.CategoryFinancial,
			Patterns: []string{
				`payment\s+terms?`, `compensation`, `remuneration`, `fees?\s+and\s+charges`,
				`invoic(?:e|ing)`, `salary`, `wages`, `amount\s+payable`, `consideration`,
			},
		},
		{
			Type: domain.CriticalTermination, Importance: domain.ImportanceHigh, Category: domain.CategoryLegal,
			Patterns: []string{
				`terminat(?:e|ion)`, `end\s+of\s+(?:this\s+)?agreement`, `expir(?:y|ation)`,
				`notice\s+period`, `breach\s+of\s+contract`, `default`, `post.?termination`,
			},
		},
		{
			Type: domain.CriticalLiability, Importance: domain.ImportanceHigh, Category: domain.CategoryLegal,
			Patterns: []string{
				`liabilit(?:y|ies)`, `indemnif(?:y|ication)`, `hold\s+harmless`,
				`limitation\s+of\s+liability`, `damages`, `losses`, `negligence`,
			},
		},
		{
			Type: domain.CriticalConfidentiality, Importance: domain.ImportanceHigh, Category: domain.CategoryLegal,
			Patterns: []string{
				`confidential(?:ity)?`, `non.?disclosure`, `proprietary\s+information`,
				`trade\s+secrets?`, `data\s+protection`,
			},
		},
		{
			Type: domain.CriticalIntellectualProperty, Importance: domain.ImportanceHigh, Category: domain.CategoryLegal,
			Patterns: []string{
				`intellectual\s+property`, `copyright`, `patent`, `trademark`,
				`work\s+product`, `ownership\s+of\s+(?:work|materials)`, `license`,
			},
		},
		{
			Type: domain.CriticalDisputeResolution, Importance: domain.ImportanceHigh, Category: domain.CategoryLegal,
			Patterns: []string{
				`dispute\s+resolution`, `arbitration`, `mediation`, `governing\s+law`,
				`jurisdiction`, `venue`, `litigation`,
			},
		},
		{
			Type: domain.CriticalForceMajeure, Importance: domain.ImportanceHigh, Category: domain.CategoryLegal,
			Patterns: []string{
				`force\s+majeure`, `act\s+of\s+god`, `unforeseeable\s+circumstances`,
				`beyond\s+(?:the\s+)?(?:reasonable\s+)?control`,
			},
		},
	}
}

func defaultObligations() []string {
	return []string{
		`shall\s+\w+`,
		`must\s+\w+`,
		`will\s+\w+`,
		`is\s+required\s+to\s+\w+`,
		`is\s+obligated\s+to\s+\w+`,
		`agrees\s+to\s+\w+`,
		`undertakes\s+to\s+\w+`,
		`commits\s+to\s+\w+`,
		`is\s+bound\s+to\s+\w+`,
		`is\s+responsible\s+for\s+\w+`,
		`guarantees\s+to\s+\w+`,
		`warrants\s+(?:to|that)\s+\w+`,
		`represents\s+(?:to|that)\s+\w+`,
		`covenants\s+to\s+\w+`,
		`pledges\s+to\s+\w+`,
	}
}

func defaultNumeric() []NumericRule {
	return []NumericRule{
		{
			Type:    domain.NumericAmount,
			Pattern: `\$\s*[\d,]+(?:\.\d{2})?|\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:dollars?|USD)`,
			Weight:  0.4,
		},
		{
			Type:    domain.NumericPercentage,
			Pattern: `\d+(?:\.\d+)?\s*%|\d+(?:\.\d+)?\s*percent`,
			Weight:  0.3,
		},
		{
			Type:    domain.NumericDate,
			Pattern: `\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b|\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}\b`,
			Weight:  0.1,
		},
		// Quantities match last: any bare integer whose span is not already
		// claimed by an amount, percentage or date match.
		{
			Type:    domain.NumericQuantity,
			Pattern: `\b\d+(?:,\d{3})*\b`,
			Weight:  0.2,
		},
	}
}

func defaultCategories() []CategoryRule {
	return []CategoryRule{
		{Category: domain.CategoryFinancial, Keywords: []string{
			"payment", "cost", "fee", "price", "compensation", "amount", "$", "invoice", "salary",
		}},
		{Category: domain.CategoryLegal, Keywords: []string{
			"law", "jurisdiction", "liability", "indemnity", "warrant", "rights", "obligation",
			"breach", "dispute", "confidential",
		}},
		{Category: domain.CategoryOperational, Keywords: []string{
			"process", "procedure", "delivery", "service", "maintenance", "support",
			"schedule", "performance",
		}},
	}
}

func defaultImportance() ImportanceRule {
	return ImportanceRule{
		High: []string{
			"terminate", "breach", "liability", "indemnity", "confidential", "payment",
			"intellectual property", "warranty", "material",
		},
		Low: []string{"notice", "administrative", "formatting", "heading"},
	}
}
