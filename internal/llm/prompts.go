package llm

import (
	"strings"

	_ "embed"
)

var (
	//go:embed prompts/analyze_resume.txt
	analyzeResumeTemplate string
	//go:embed prompts/learning_paths.txt
	learningPathsTemplate string
)

// BuildAnalysisPrompt assembles the resume-analysis instruction. It is a pure
// function of its inputs: no truncation, no timestamps, same inputs always
// produce the same prompt.
func BuildAnalysisPrompt(resumeText, jobTitle, jobDescription string) string {
	replacer := strings.NewReplacer(
		"{{JOB_TITLE}}", jobTitle,
		"{{JOB_DESCRIPTION}}", jobDescription,
		"{{RESUME_TEXT}}", resumeText,
	)
	return replacer.Replace(analyzeResumeTemplate)
}

// BuildLearningPrompt assembles the learning-path instruction from profile data.
func BuildLearningPrompt(skills, interests []string, careerGoal, currentYear, college string) string {
	replacer := strings.NewReplacer(
		"{{SKILLS}}", strings.Join(skills, ", "),
		"{{INTERESTS}}", strings.Join(interests, ", "),
		"{{CAREER_GOAL}}", careerGoal,
		"{{CURRENT_YEAR}}", currentYear,
		"{{COLLEGE}}", college,
	)
	return replacer.Replace(learningPathsTemplate)
}
