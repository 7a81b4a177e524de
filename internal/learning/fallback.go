package learning

import (
	"sort"
	"strings"
)

// catalog backs suggestions when the model is unavailable or unparseable.
// Entries are ordered roughly by breadth of appeal; the first three double
// as the default set for users with no profile signal at all.
var catalog = []LearningPath{
	{
		Title:         "JavaScript Fundamentals",
		Description:   "Master the basics of JavaScript programming for web development",
		Category:      "Programming",
		Difficulty:    "Beginner",
		Duration:      "4-6 weeks",
		Provider:      "FreeCodeCamp",
		URL:           "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/",
		Skills:        []string{"JavaScript", "Programming", "Web Development"},
		Rating:        4.8,
		Enrolled:      15420,
		IsRecommended: true,
		Match:         85,
		Modules: []string{
			"Variables and Data Types",
			"Functions and Scope",
			"DOM Manipulation",
			"ES6+ Features",
			"Async Programming",
			"Practice Projects",
		},
	},
	{
		Title:         "React Development Mastery",
		Description:   "Build modern, scalable web applications with React ecosystem",
		Category:      "Frontend Framework",
		Difficulty:    "Intermediate",
		Duration:      "6-8 weeks",
		Provider:      "React.dev",
		URL:           "https://react.dev/learn",
		Skills:        []string{"React", "JavaScript", "Frontend", "Component Design"},
		Rating:        4.9,
		Enrolled:      8940,
		IsRecommended: true,
		Match:         92,
		Modules: []string{
			"React Fundamentals",
			"Hooks and State Management",
			"Component Patterns",
			"Routing with React Router",
			"State Management (Redux/Zustand)",
			"Testing and Deployment",
		},
	},
	{
		Title:         "Data Structures & Algorithms",
		Description:   "Essential problem-solving skills for coding interviews and system design",
		Category:      "Computer Science",
		Difficulty:    "Intermediate",
		Duration:      "8-12 weeks",
		Provider:      "LeetCode + GeeksforGeeks",
		URL:           "https://leetcode.com/study-plan/",
		Skills:        []string{"Problem Solving", "Algorithms", "Data Structures", "Interview Prep"},
		Rating:        4.7,
		Enrolled:      12350,
		IsRecommended: true,
		Match:         78,
		Modules: []string{
			"Arrays and Strings",
			"Linked Lists and Stacks",
			"Trees and Graphs",
			"Dynamic Programming",
			"System Design Basics",
			"Mock Interviews",
		},
	},
	{
		Title:         "Python for Data Science",
		Description:   "Learn Python programming focused on data analysis and machine learning",
		Category:      "Data Science",
		Difficulty:    "Beginner",
		Duration:      "6-10 weeks",
		Provider:      "Coursera",
		URL:           "https://www.coursera.org/specializations/python",
		Skills:        []string{"Python", "Data Analysis", "Pandas", "NumPy", "Machine Learning"},
		Rating:        4.6,
		Enrolled:      18750,
		IsRecommended: true,
		Match:         88,
		Modules: []string{
			"Python Basics",
			"Data Manipulation with Pandas",
			"Data Visualization",
			"Statistics for Data Science",
			"Intro to Machine Learning",
			"Capstone Project",
		},
	},
	{
		Title:         "Full Stack Web Development",
		Description:   "Complete web development course covering frontend and backend technologies",
		Category:      "Web Development",
		Difficulty:    "Intermediate",
		Duration:      "12-16 weeks",
		Provider:      "The Odin Project",
		URL:           "https://www.theodinproject.com/paths/full-stack-javascript",
		Skills:        []string{"HTML", "CSS", "JavaScript", "Node.js", "Database", "Express"},
		Rating:        4.8,
		Enrolled:      9240,
		IsRecommended: true,
		Match:         90,
		Modules: []string{
			"Frontend Foundations",
			"JavaScript Deep Dive",
			"Backend with Node.js",
			"Database Management",
			"API Development",
			"Full Stack Project",
		},
	},
	{
		Title:         "Mobile App Development with React Native",
		Description:   "Build cross-platform mobile applications using React Native",
		Category:      "Mobile Development",
		Difficulty:    "Intermediate",
		Duration:      "8-10 weeks",
		Provider:      "Expo + React Native",
		URL:           "https://reactnative.dev/docs/getting-started",
		Skills:        []string{"React Native", "Mobile Development", "JavaScript", "iOS", "Android"},
		Rating:        4.5,
		Enrolled:      6830,
		IsRecommended: true,
		Match:         82,
		Modules: []string{
			"React Native Fundamentals",
			"Navigation & State Management",
			"Native Device Features",
			"Performance Optimization",
			"App Store Deployment",
			"Advanced Patterns",
		},
	},
}

// FallbackPaths scores the static catalog against the user's profile and
// returns the best matches. The scoring is deterministic: skill overlap
// weighs 20 per hit, interest overlap 15, career goal alignment 25, on a
// base of 50 capped at 98. No signal at all returns the first three
// catalog entries unscored.
func FallbackPaths(skills, interests []string, careerGoal string) []LearningPath {
	goal := strings.ToLower(strings.TrimSpace(careerGoal))

	var matched []LearningPath
	for _, path := range catalog {
		if pathMatches(path, skills, interests, goal) {
			matched = append(matched, clonePath(path))
		}
	}
	if len(matched) == 0 {
		out := make([]LearningPath, 0, 3)
		for _, path := range catalog[:3] {
			out = append(out, clonePath(path))
		}
		return out
	}

	for i := range matched {
		score := overlapCount(matched[i].Skills, skills)*20 + overlapCount(matched[i].Skills, interests)*15
		if goalAligned(matched[i], goal) {
			score += 25
		}
		score += 50
		if score > 98 {
			score = 98
		}
		matched[i].Match = score
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Match > matched[j].Match
	})
	if len(matched) > 4 {
		matched = matched[:4]
	}
	return matched
}

func pathMatches(path LearningPath, skills, interests []string, goal string) bool {
	for _, skill := range path.Skills {
		if containsFold(skills, skill) || containsFold(interests, skill) {
			return true
		}
	}
	for _, interest := range interests {
		if strings.Contains(strings.ToLower(path.Category), strings.ToLower(interest)) {
			return true
		}
	}
	return goalAligned(path, goal)
}

func goalAligned(path LearningPath, goal string) bool {
	if goal == "" {
		return false
	}
	return strings.Contains(strings.ToLower(path.Description), goal) ||
		strings.Contains(strings.ToLower(path.Category), goal)
}

// containsFold reports whether any candidate contains needle,
// case-insensitively.
func containsFold(candidates []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), needle) {
			return true
		}
	}
	return false
}

func overlapCount(pathSkills, userValues []string) int {
	count := 0
	for _, skill := range pathSkills {
		if containsFold(userValues, skill) {
			count++
		}
	}
	return count
}

func clonePath(path LearningPath) LearningPath {
	path.Skills = append([]string(nil), path.Skills...)
	path.Modules = append([]string(nil), path.Modules...)
	return path
}
