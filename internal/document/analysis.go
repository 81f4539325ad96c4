package document

import (
	"github.com/lexdesk/lexdesk/internal/api"
)

// FromAnalysis builds the view model for a fresh analysis result. Unlike
// FromBackend, clause enrichment (risk factors, protections, red flags,
// action guides, key points, tags) and the causal graph are carried over.
func FromAnalysis(doc *api.AnalysisDocument) ViewModel {
	if doc == nil {
		doc = &api.AnalysisDocument{}
	}
	risk := doc.RiskProfile
	dims := risk.RiskDimensions
	if dims == nil {
		dims = api.Dimensions{}
	}

	vm := ViewModel{
		DocumentID: doc.DocumentID.String(),
		Meta: Meta{
			Language:     orDefault(doc.Meta.Language, DefaultLanguage),
			DomainTags:   orEmpty(doc.Meta.DomainTags),
			Parties:      orEmpty(doc.Meta.Parties),
			GoverningLaw: nonEmpty(doc.Meta.GoverningLaw),
		},
		Summary: Summary{
			Title:              nonEmpty(doc.Summary.Title),
			OverallSummary:     doc.Summary.OverallSummary,
			OneLineSummary:     doc.Summary.OneLineSummary,
			KeyPoints:          orEmpty(doc.Summary.KeyPoints),
			MainRisks:          orEmpty(doc.Summary.MainRisks),
			MainProtections:    orEmpty(doc.Summary.MainProtections),
			RecommendedActions: orEmpty(doc.Summary.RecommendedActions),
		},
		RiskProfile: RiskProfile{
			OverallRiskLevel: RiskLevel(orDefault(risk.OverallRiskLevel, string(DefaultRiskLevel))),
			OverallRiskScore: clampScore(risk.OverallRiskScore),
			RiskDimensions:   dims,
			Comments:         risk.Comments,
		},
		Clauses:     make([]Clause, 0, len(doc.Clauses)),
		CausalGraph: make([]Causality, 0, len(doc.CausalGraph)),
		Terms:       make([]Term, 0, len(doc.Terms)),
		CreatedAt:   createdAt(doc.CreatedAt, nil),
	}

	ids := newClauseIDs()
	for _, c := range doc.Clauses {
		summary := c.Summary
		vm.Clauses = append(vm.Clauses, Clause{
			ClauseID:     ids.next(c.ClauseID.String()),
			Title:        nonEmpty(c.Title),
			RawText:      c.RawText,
			Summary:      nonEmpty(&summary),
			RiskLevel:    RiskLevel(c.RiskLevel),
			RiskScore:    c.RiskScore,
			RiskFactors:  orEmpty(c.RiskFactors),
			Protections:  orEmpty(c.Protections),
			RedFlags:     orEmpty(c.RedFlags),
			ActionGuides: orEmpty(c.ActionGuides),
			KeyPoints:    orEmpty(c.KeyPoints),
			Tags: Tags{
				Domain:  orEmpty(c.Tags.Domain),
				Risk:    orEmpty(c.Tags.Risk),
				Parties: orEmpty(c.Tags.Parties),
			},
		})
	}
	for _, link := range doc.CausalGraph {
		vm.CausalGraph = append(vm.CausalGraph, Causality{
			From:         link.FromClauseID,
			To:           link.ToClauseID,
			Relationship: link.Relationship,
			Description:  link.Description,
		})
	}
	for _, t := range doc.Terms {
		vm.Terms = append(vm.Terms, termFrom(t))
	}
	return vm
}
