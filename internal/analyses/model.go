package analyses

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRequest marks requests rejected before any inference call.
var ErrInvalidRequest = errors.New("invalid analysis request")

// AnalysisRequest is the inbound payload for a resume analysis.
type AnalysisRequest struct {
	ResumeText     string `json:"resumeText"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
}

// Validate rejects requests with any empty field. Validation happens before
// the external call so a bad request never consumes inference quota.
func (r AnalysisRequest) Validate() error {
	if strings.TrimSpace(r.ResumeText) == "" {
		return fmt.Errorf("%w: resumeText is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.JobTitle) == "" {
		return fmt.Errorf("%w: jobTitle is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return fmt.Errorf("%w: jobDescription is required", ErrInvalidRequest)
	}
	return nil
}

// CategoryScores carries the eight fixed scoring categories, each 0-10.
type CategoryScores struct {
	Formatting          Score `json:"formatting"`
	Clarity             Score `json:"clarity"`
	RelevanceToJobs     Score `json:"relevance_to_jobs"`
	SkillsPresentation  Score `json:"skills_presentation"`
	ImpactOfExperience  Score `json:"impact_of_experience"`
	KeywordsForATS      Score `json:"keywords_for_ATS"`
	UseOfAdverbs        Score `json:"use_of_adverbs"`
	XYZFormatInProjects Score `json:"xyz_format_in_projects"`
}

// AdverbUsage lists adverbs found in the resume and ones worth adding.
type AdverbUsage struct {
	UsedInResume   []string `json:"used_in_resume"`
	SuggestedToAdd []string `json:"suggested_to_add"`
}

// RewrittenExample pairs a weak bullet with its improved rewrite.
type RewrittenExample struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

// AnalysisResult is the contract returned to callers. It is always
// well-formed: required scores present, optional collections never nil.
type AnalysisResult struct {
	OverallScore      Score              `json:"overall_score"`
	CategoryScores    CategoryScores     `json:"category_scores"`
	Strengths         []string           `json:"strengths"`
	Weaknesses        []string           `json:"weaknesses"`
	Recommendations   []string           `json:"recommendations"`
	ATSKeywordsToAdd  []string           `json:"ats_keywords_to_add"`
	Adverbs           AdverbUsage        `json:"adverbs"`
	RewrittenExamples []RewrittenExample `json:"rewritten_examples"`
}

// Score is an integer score that tolerates models emitting numbers as quoted
// strings ("75") or floats (75.0), which Gemini does routinely despite the
// schema in the prompt.
type Score int

// UnmarshalJSON accepts ints, floats, and numeric strings.
func (s *Score) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = 0
		return nil
	}
	if len(trimmed) >= 2 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		trimmed = strings.TrimSpace(str)
	}
	if val, err := strconv.Atoi(trimmed); err == nil {
		*s = Score(val)
		return nil
	}
	if val, err := strconv.ParseFloat(trimmed, 64); err == nil {
		*s = Score(int(val))
		return nil
	}
	return fmt.Errorf("score %q is not numeric", trimmed)
}

func clampScore(val, max Score) Score {
	if val < 0 {
		return 0
	}
	if val > max {
		return max
	}
	return val
}

// Normalize clamps scores into range and replaces nil collections with empty
// ones so the wire shape is stable.
func (r *AnalysisResult) Normalize() {
	r.OverallScore = clampScore(r.OverallScore, 100)
	r.CategoryScores.Formatting = clampScore(r.CategoryScores.Formatting, 10)
	r.CategoryScores.Clarity = clampScore(r.CategoryScores.Clarity, 10)
	r.CategoryScores.RelevanceToJobs = clampScore(r.CategoryScores.RelevanceToJobs, 10)
	r.CategoryScores.SkillsPresentation = clampScore(r.CategoryScores.SkillsPresentation, 10)
	r.CategoryScores.ImpactOfExperience = clampScore(r.CategoryScores.ImpactOfExperience, 10)
	r.CategoryScores.KeywordsForATS = clampScore(r.CategoryScores.KeywordsForATS, 10)
	r.CategoryScores.UseOfAdverbs = clampScore(r.CategoryScores.UseOfAdverbs, 10)
	r.CategoryScores.XYZFormatInProjects = clampScore(r.CategoryScores.XYZFormatInProjects, 10)

	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Weaknesses == nil {
		r.Weaknesses = []string{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	if r.ATSKeywordsToAdd == nil {
		r.ATSKeywordsToAdd = []string{}
	}
	if r.Adverbs.UsedInResume == nil {
		r.Adverbs.UsedInResume = []string{}
	}
	if r.Adverbs.SuggestedToAdd == nil {
		r.Adverbs.SuggestedToAdd = []string{}
	}
	if r.RewrittenExamples == nil {
		r.RewrittenExamples = []RewrittenExample{}
	}
}
