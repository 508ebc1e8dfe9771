package steps

// seedSteps is the intake sequence. Order values are the navigation
// order; the summary step is always last.
var seedSteps = []Step{
	{
		ID:            "intro-self-report",
		Order:         1,
		Kind:          KindSelfReport,
		Title:         "How confident are you?",
		Prompt:        "Rate your confidence in each area from 1 (never touched it) to 5 (very comfortable).",
		EstimatedMins: 3,
		Fields: []SelfReportField{
			{SkillKey: "prog_variables", Label: "Variables and data types"},
			{SkillKey: "prog_functions", Label: "Writing functions"},
			{SkillKey: "js_syntax", Label: "JavaScript"},
			{SkillKey: "web_html", Label: "HTML"},
			{SkillKey: "web_css", Label: "CSS"},
			{SkillKey: "be_rest", Label: "Building APIs"},
			{SkillKey: "dev_git", Label: "Git"},
		},
	},
	{
		ID:            "js-closures-mcq",
		Order:         2,
		Kind:          KindMCQ,
		Title:         "JavaScript basics",
		Prompt:        "What does `[1, 2, 3].map(x => x * 2)` evaluate to?",
		SkillKeys:     []string{"js_syntax", "js_array_methods"},
		Weight:        0.6,
		EstimatedMins: 1,
		Options: []Option{
			{ID: "a", Label: "[2, 4, 6]"},
			{ID: "b", Label: "[1, 2, 3, 1, 2, 3]"},
			{ID: "c", Label: "6"},
			{ID: "d", Label: "undefined"},
		},
		CorrectOptionID: "a",
	},
	{
		ID:            "web-box-model-mcq",
		Order:         3,
		Kind:          KindMCQ,
		Title:         "CSS box model",
		Prompt:        "Which property adds space inside an element's border?",
		SkillKeys:     []string{"web_css"},
		Weight:        0.6,
		EstimatedMins: 1,
		Options: []Option{
			{ID: "a", Label: "margin"},
			{ID: "b", Label: "padding"},
			{ID: "c", Label: "gap"},
			{ID: "d", Label: "outline"},
		},
		CorrectOptionID: "b",
	},
	{
		ID:            "fundamentals-burst",
		Order:         4,
		Kind:          KindMicroMCQ,
		Title:         "Quick-fire fundamentals",
		Prompt:        "Four quick questions. Answer all of them to continue.",
		Weight:        0.7,
		EstimatedMins: 3,
		Micro: []MicroQuestion{
			{
				ID:     "loop-count",
				Prompt: "How many times does `for (let i = 0; i < 3; i++)` run its body?",
				Options: []Option{
					{ID: "a", Label: "2"}, {ID: "b", Label: "3"}, {ID: "c", Label: "4"},
				},
				CorrectOptionID: "b",
				SkillKey:        "prog_loops",
			},
			{
				ID:     "truthiness",
				Prompt: "Which value is falsy?",
				Options: []Option{
					{ID: "a", Label: "\"0\""}, {ID: "b", Label: "[]"}, {ID: "c", Label: "0"},
				},
				CorrectOptionID: "c",
				SkillKey:        "prog_operators",
			},
			{
				ID:     "array-index",
				Prompt: "What is `['a', 'b', 'c'][1]`?",
				Options: []Option{
					{ID: "a", Label: "'a'"}, {ID: "b", Label: "'b'"}, {ID: "c", Label: "'c'"},
				},
				CorrectOptionID: "b",
				SkillKey:        "prog_arrays",
			},
			{
				ID:     "branching",
				Prompt: "When does the `else` branch of an if/else execute?",
				Options: []Option{
					{ID: "a", Label: "When the condition is false"},
					{ID: "b", Label: "Always"},
					{ID: "c", Label: "When the condition throws"},
				},
				CorrectOptionID: "a",
				SkillKey:        "prog_conditionals",
			},
		},
	},
	{
		ID:            "decomposition-text",
		Order:         5,
		Kind:          KindShortText,
		Title:         "Breaking down a problem",
		Prompt:        "You need to build a page that shows a searchable list of books. Describe, step by step, how you would break this down before writing any code.",
		SkillKeys:     []string{"sys_decomposition", "sys_dataflow"},
		Weight:        0.4,
		EstimatedMins: 4,
		MinLength:     80,
		MaxLength:     1200,
		Keywords:      []string{"component", "data", "search", "filter", "state", "list", "input"},
	},
	{
		ID:            "reverse-words-code",
		Order:         6,
		Kind:          KindCode,
		Title:         "Code exercise",
		Prompt:        "Implement Solve so it returns the words of the input line in reverse order, separated by single spaces.",
		SkillKeys:     []string{"prog_functions", "prog_arrays", "prog_loops"},
		Weight:        0.9,
		EstimatedMins: 8,
		Language:      "go",
		StarterCode: `package solution

// Solve receives one line of input and returns the answer.
func Solve(input string) string {
	return input
}
`,
		Tests: []TestCase{
			{Input: "the quick brown fox", Expected: "fox brown quick the"},
			{Input: "hello", Expected: "hello"},
			{Input: "a b", Expected: "b a", Hidden: true},
			{Input: "one two three four five", Expected: "five four three two one", Hidden: true},
		},
	},
	{
		ID:            "signup-form-compare",
		Order:         7,
		Kind:          KindDesignCompare,
		Title:         "Which design is better?",
		Prompt:        "Two sign-up forms. A: single column, labels above fields, one clear primary button. B: three columns, placeholder-only labels, four equally styled buttons.",
		SkillKeys:     []string{"design_hierarchy", "design_ux"},
		Weight:        0.6,
		EstimatedMins: 1,
		Options: []Option{
			{ID: "a", Label: "Design A"},
			{ID: "b", Label: "Design B"},
		},
		CorrectOptionID: "a",
	},
	{
		ID:            "pricing-page-critique",
		Order:         8,
		Kind:          KindDesignCritique,
		Title:         "Design critique",
		Prompt:        "A pricing page uses six typefaces, centers every paragraph, and puts light grey text on a white background. Critique it: what would you change and why?",
		SkillKeys:     []string{"design_typography", "design_color", "design_ux"},
		Weight:        0.4,
		EstimatedMins: 4,
		MinLength:     60,
		MaxLength:     1000,
		Keywords:      []string{"contrast", "font", "typeface", "readability", "hierarchy", "align", "consistency"},
	},
	{
		ID:            "http-methods-mcq",
		Order:         9,
		Kind:          KindMCQ,
		Title:         "HTTP methods",
		Prompt:        "A client wants to fetch a resource without changing anything on the server. Which method should it use?",
		SkillKeys:     []string{"web_http", "be_rest"},
		Weight:        0.6,
		EstimatedMins: 1,
		Options: []Option{
			{ID: "a", Label: "POST"},
			{ID: "b", Label: "GET"},
			{ID: "c", Label: "PUT"},
			{ID: "d", Label: "DELETE"},
		},
		CorrectOptionID: "b",
	},
	{
		ID:            "backend-burst",
		Order:         10,
		Kind:          KindMicroMCQ,
		Title:         "Backend & tooling",
		Prompt:        "Three quick questions. Answer all of them to continue.",
		Weight:        0.7,
		EstimatedMins: 2,
		Micro: []MicroQuestion{
			{
				ID:     "sql-select",
				Prompt: "Which SQL statement reads rows from a table?",
				Options: []Option{
					{ID: "a", Label: "SELECT"}, {ID: "b", Label: "INSERT"}, {ID: "c", Label: "ALTER"},
				},
				CorrectOptionID: "a",
				SkillKey:        "be_databases",
			},
			{
				ID:     "status-404",
				Prompt: "What does a 404 response mean?",
				Options: []Option{
					{ID: "a", Label: "Server error"}, {ID: "b", Label: "Not found"}, {ID: "c", Label: "Unauthorized"},
				},
				CorrectOptionID: "b",
				SkillKey:        "be_rest",
			},
			{
				ID:     "git-commit",
				Prompt: "Which command records staged changes to the local repository?",
				Options: []Option{
					{ID: "a", Label: "git push"}, {ID: "b", Label: "git add"}, {ID: "c", Label: "git commit"},
				},
				CorrectOptionID: "c",
				SkillKey:        "dev_git",
			},
		},
	},
	{
		ID:            "debugging-text",
		Order:         11,
		Kind:          KindShortText,
		Title:         "Debugging approach",
		Prompt:        "A page renders a blank screen with no error dialog. Describe how you would find the cause.",
		SkillKeys:     []string{"prog_debugging", "dev_terminal"},
		Weight:        0.4,
		EstimatedMins: 3,
		MinLength:     60,
		MaxLength:     800,
		Keywords:      []string{"console", "devtools", "error", "log", "network", "inspect", "reproduce"},
	},
	{
		ID:            "intake-summary",
		Order:         12,
		Kind:          KindSummary,
		Title:         "All done",
		Prompt:        "That's the whole assessment. Submit to see your results.",
		EstimatedMins: 1,
	},
}

func init() {
	if err := validateSteps(seedSteps); err != nil {
		panic(err)
	}
	seq = buildSequence(seedSteps)
}
