package httptransport

import "facereg/internal/registry/models"

// TemplateResponse describes one stored template. Template carries the
// recognizer's own representation and is only included in listings.
type TemplateResponse struct {
	Identifier string          `json:"identifier"`
	Version    string          `json:"version"`
	Template   models.Template `json:"template,omitempty"`
}

type RegisterResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

type MatchResponse struct {
	Identifier   string             `json:"identifier"`
	Version      string             `json:"version"`
	Score        float64            `json:"score"`
	AutoEnrolled []TemplateResponse `json:"auto_enrolled,omitempty"`
}

type IdentifyResponse struct {
	Matches []MatchResponse `json:"matches"`
}

type AuthenticateResponse struct {
	Authenticated bool               `json:"authenticated"`
	Version       string             `json:"version"`
	Score         float64            `json:"score"`
	AutoEnrolled  []TemplateResponse `json:"auto_enrolled,omitempty"`
}

type IdentifiersResponse struct {
	Identifiers []string `json:"identifiers"`
}

type TemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

func toTemplates(templates []models.TaggedTemplate, withTemplate bool) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		resp := TemplateResponse{Identifier: t.Identifier, Version: t.Version()}
		if withTemplate {
			resp.Template = t.Template
		}
		out = append(out, resp)
	}
	return out
}

func toIdentifyResponse(results []models.IdentificationResult) IdentifyResponse {
	matches := make([]MatchResponse, 0, len(results))
	for _, r := range results {
		m := MatchResponse{
			Identifier: r.Match.Identifier,
			Version:    r.Match.Version(),
			Score:      r.Score,
		}
		if len(r.AutoEnrolled) > 0 {
			m.AutoEnrolled = toTemplates(r.AutoEnrolled, false)
		}
		matches = append(matches, m)
	}
	return IdentifyResponse{Matches: matches}
}

func toAuthenticateResponse(r *models.AuthenticationResult) AuthenticateResponse {
	resp := AuthenticateResponse{
		Authenticated: r.Authenticated,
		Version:       r.Matched.Version(),
		Score:         r.Score,
	}
	if len(r.AutoEnrolled) > 0 {
		resp.AutoEnrolled = toTemplates(r.AutoEnrolled, false)
	}
	return resp
}
